package usecase

import (
	"context"

	"github.com/JosueLm7/PanaderiaDelicia/src/cart/application/response"
	"github.com/JosueLm7/PanaderiaDelicia/src/cart/domain/port"
)

// RemoveItemUseCase caso de uso para quitar una línea del carrito
type RemoveItemUseCase struct {
	carts port.CartStore
}

// NewRemoveItemUseCase crea una nueva instancia del caso de uso
func NewRemoveItemUseCase(carts port.CartStore) *RemoveItemUseCase {
	return &RemoveItemUseCase{
		carts: carts,
	}
}

// Execute elimina la línea del producto si existe y guarda el carrito
func (uc *RemoveItemUseCase) Execute(ctx context.Context, cartID string, productID int) (*response.CartResponse, error) {
	cart, err := loadOrCreate(ctx, uc.carts, cartID)
	if err != nil {
		return nil, err
	}

	cart.RemoveItem(productID)

	if err := uc.carts.Save(ctx, cart); err != nil {
		return nil, err
	}

	return response.NewCartResponse(cart), nil
}
