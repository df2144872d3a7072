package entity

import "errors"

var (
	ErrUserIDRequired          = errors.New("user_id is required")
	ErrOrderMustHaveItems      = errors.New("order must have at least one item")
	ErrOrderNotFound           = errors.New("order not found")
	ErrInvalidPaymentMethod    = errors.New("payment_method is not valid")
	ErrCustomerNameRequired    = errors.New("customer_name is required")
	ErrCustomerPhoneRequired   = errors.New("customer_phone is required")
	ErrCustomerEmailRequired   = errors.New("customer_email is required")
	ErrDeliveryAddressRequired = errors.New("delivery_address is required")
	ErrDeliveryDateRequired    = errors.New("delivery_date is required")
	ErrDeliveryTimeRequired    = errors.New("delivery_time is required")
	ErrInvalidDeliveryDate     = errors.New("delivery_date must be today or later")

	ErrProductIDRequired   = errors.New("product_id is required")
	ErrProductNameRequired = errors.New("product_name is required")
	ErrInvalidQuantity     = errors.New("quantity must be greater than 0")
	ErrInvalidPrice        = errors.New("price must be greater than or equal to 0")
	ErrInvalidShipping     = errors.New("shipping must be greater than or equal to 0")
)
