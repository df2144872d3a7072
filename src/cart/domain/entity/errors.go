package entity

import "errors"

var (
	ErrProductIDRequired   = errors.New("product id is required")
	ErrProductNameRequired = errors.New("product name is required")
	ErrInvalidPrice        = errors.New("price must be greater than or equal to 0")
	ErrCartNotFound        = errors.New("cart not found")
)
