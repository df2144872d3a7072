package entity

import (
	"errors"
	"time"
)

var (
	ErrUserIDRequired  = errors.New("user_id is required")
	ErrProfileNotFound = errors.New("profile not found")
)

// Profile contiene los datos de contacto guardados del cliente.
// Se usa para precargar el formulario de entrega; el flujo de pedidos no
// escribe sobre esta tabla.
type Profile struct {
	UserID    string    `json:"user_id"`
	FullName  string    `json:"full_name,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
