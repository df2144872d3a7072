package response

import (
	"github.com/shopspring/decimal"

	"github.com/JosueLm7/PanaderiaDelicia/src/cart/domain/entity"
)

// CartLineResponse representa una línea del carrito
type CartLineResponse struct {
	ProductID int             `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"image_url,omitempty"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CartResponse representa el carrito con sus valores derivados.
// El total se redondea a dos decimales solo aquí, al presentarlo.
type CartResponse struct {
	Items     []CartLineResponse `json:"items"`
	ItemCount int                `json:"item_count"`
	Total     decimal.Decimal    `json:"total"`
}

// NewCartResponse construye el DTO a partir del aggregate
func NewCartResponse(cart *entity.Cart) *CartResponse {
	items := make([]CartLineResponse, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		items = append(items, CartLineResponse{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			ImageURL:  line.ImageURL,
			Quantity:  line.Quantity,
			Subtotal:  line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))),
		})
	}

	return &CartResponse{
		Items:     items,
		ItemCount: cart.ItemCount(),
		Total:     cart.Total().Round(2),
	}
}
