package usecase

import (
	"context"

	"github.com/JosueLm7/PanaderiaDelicia/src/cart/application/response"
	"github.com/JosueLm7/PanaderiaDelicia/src/cart/domain/port"
)

// UpdateQuantityUseCase caso de uso para cambiar la cantidad de una línea
type UpdateQuantityUseCase struct {
	carts port.CartStore
}

// NewUpdateQuantityUseCase crea una nueva instancia del caso de uso
func NewUpdateQuantityUseCase(carts port.CartStore) *UpdateQuantityUseCase {
	return &UpdateQuantityUseCase{
		carts: carts,
	}
}

// Execute fija la cantidad (<= 0 elimina la línea) y guarda el carrito.
// Un producto ausente deja el carrito tal como estaba.
func (uc *UpdateQuantityUseCase) Execute(ctx context.Context, cartID string, productID, quantity int) (*response.CartResponse, error) {
	cart, err := loadOrCreate(ctx, uc.carts, cartID)
	if err != nil {
		return nil, err
	}

	cart.UpdateQuantity(productID, quantity)

	if err := uc.carts.Save(ctx, cart); err != nil {
		return nil, err
	}

	return response.NewCartResponse(cart), nil
}
