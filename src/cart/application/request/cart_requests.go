package request

import "github.com/shopspring/decimal"

// AddItemRequest representa el producto a agregar al carrito.
// El cliente envía el snapshot del producto tal como lo mostró el catálogo.
type AddItemRequest struct {
	ID       int             `json:"id" binding:"required"`
	Name     string          `json:"name" binding:"required"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"image_url,omitempty"`
}

// UpdateQuantityRequest representa el cambio de cantidad de una línea
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}
