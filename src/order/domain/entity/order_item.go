package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItem representa una línea dentro de un pedido (Entity dentro del Aggregate).
// El nombre y el precio del producto se copian al momento de la compra para que
// cambios posteriores en el catálogo no alteren pedidos ya creados.
type OrderItem struct {
	ItemID       string          `json:"item_id"`
	OrderID      int64           `json:"order_id"`
	ProductID    int             `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductPrice decimal.Decimal `json:"product_price"`
	Quantity     int             `json:"quantity"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// NewOrderItem crea una nueva línea de pedido con el snapshot del producto
func NewOrderItem(productID int, productName string, productPrice decimal.Decimal, quantity int) (*OrderItem, error) {
	// Validaciones básicas
	if productID <= 0 {
		return nil, ErrProductIDRequired
	}
	if productName == "" {
		return nil, ErrProductNameRequired
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if productPrice.LessThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}

	// Calcular subtotal de la línea
	subtotal := productPrice.Mul(decimal.NewFromInt(int64(quantity)))

	return &OrderItem{
		ItemID:       uuid.New().String(),
		ProductID:    productID,
		ProductName:  productName,
		ProductPrice: productPrice,
		Quantity:     quantity,
		Subtotal:     subtotal,
	}, nil
}
