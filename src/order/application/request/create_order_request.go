package request

import "github.com/shopspring/decimal"

// CreateOrderItemRequest representa una línea del carrito dentro de la petición
type CreateOrderItemRequest struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// CardRequest contiene los datos de tarjeta cuando payment_method es "tarjeta".
// Solo la capa de presentación los valida; nunca llegan al caso de uso ni a la base.
type CardRequest struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
	Holder string `json:"holder"`
}

// CreateOrderRequest representa la petición para crear un pedido.
// El campo subtotal se acepta por compatibilidad con el cliente pero el
// servidor siempre lo recalcula a partir de las líneas.
type CreateOrderRequest struct {
	UserID          string                   `json:"user_id"`
	CustomerName    string                   `json:"customer_name"`
	CustomerPhone   string                   `json:"customer_phone"`
	CustomerEmail   string                   `json:"customer_email"`
	DeliveryAddress string                   `json:"delivery_address"`
	DeliveryDate    string                   `json:"delivery_date"`
	DeliveryTime    string                   `json:"delivery_time"`
	Notes           string                   `json:"notes,omitempty"`
	PaymentMethod   string                   `json:"payment_method"`
	Items           []CreateOrderItemRequest `json:"items"`
	Subtotal        decimal.Decimal          `json:"subtotal"`
	Shipping        *decimal.Decimal         `json:"shipping,omitempty"`
	Card            *CardRequest             `json:"card,omitempty"`
}
