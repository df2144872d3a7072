package usecase

import (
	"context"

	"github.com/JosueLm7/PanaderiaDelicia/src/cart/application/response"
	"github.com/JosueLm7/PanaderiaDelicia/src/cart/domain/entity"
	"github.com/JosueLm7/PanaderiaDelicia/src/cart/domain/port"
)

// ClearCartUseCase caso de uso para vaciar el carrito
type ClearCartUseCase struct {
	carts port.CartStore
}

// NewClearCartUseCase crea una nueva instancia del caso de uso
func NewClearCartUseCase(carts port.CartStore) *ClearCartUseCase {
	return &ClearCartUseCase{
		carts: carts,
	}
}

// Execute elimina el carrito de la sesión y retorna uno vacío
func (uc *ClearCartUseCase) Execute(ctx context.Context, cartID string) (*response.CartResponse, error) {
	if err := uc.carts.Delete(ctx, cartID); err != nil {
		return nil, err
	}

	return response.NewCartResponse(entity.NewCart(cartID)), nil
}
