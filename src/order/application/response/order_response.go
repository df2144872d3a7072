package response

import "github.com/shopspring/decimal"

// OrderItemResponse representa una línea dentro del pedido
type OrderItemResponse struct {
	ItemID       string          `json:"item_id"`
	ProductID    int             `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductPrice decimal.Decimal `json:"product_price"`
	Quantity     int             `json:"quantity"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// OrderResponse representa un pedido completo (cabecera + líneas)
type OrderResponse struct {
	ID              int64               `json:"id"`
	OrderNumber     string              `json:"order_number"`
	UserID          string              `json:"user_id"`
	CustomerName    string              `json:"customer_name"`
	CustomerPhone   string              `json:"customer_phone"`
	CustomerEmail   string              `json:"customer_email"`
	DeliveryAddress string              `json:"delivery_address"`
	DeliveryDate    string              `json:"delivery_date"`
	DeliveryTime    string              `json:"delivery_time"`
	Notes           string              `json:"notes,omitempty"`
	Subtotal        decimal.Decimal     `json:"subtotal"`
	Shipping        decimal.Decimal     `json:"shipping"`
	Total           decimal.Decimal     `json:"total"`
	PaymentMethod   string              `json:"payment_method"`
	Status          string              `json:"status"`
	CreatedAt       string              `json:"created_at"`
	Items           []OrderItemResponse `json:"items"`
}
