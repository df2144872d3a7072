package usecase

import (
	"context"
	"errors"

	"github.com/JosueLm7/PanaderiaDelicia/src/cart/application/response"
	"github.com/JosueLm7/PanaderiaDelicia/src/cart/domain/entity"
	"github.com/JosueLm7/PanaderiaDelicia/src/cart/domain/port"
)

// GetCartUseCase caso de uso para consultar el carrito de la sesión
type GetCartUseCase struct {
	carts port.CartStore
}

// NewGetCartUseCase crea una nueva instancia del caso de uso
func NewGetCartUseCase(carts port.CartStore) *GetCartUseCase {
	return &GetCartUseCase{
		carts: carts,
	}
}

// Execute retorna el carrito de la sesión; si no existe retorna uno vacío
func (uc *GetCartUseCase) Execute(ctx context.Context, cartID string) (*response.CartResponse, error) {
	cart, err := uc.carts.Get(ctx, cartID)
	if err != nil {
		if errors.Is(err, entity.ErrCartNotFound) {
			return response.NewCartResponse(entity.NewCart(cartID)), nil
		}
		return nil, err
	}

	return response.NewCartResponse(cart), nil
}

// loadOrCreate obtiene el carrito de la sesión o crea uno vacío.
// Compartido por los casos de uso de mutación.
func loadOrCreate(ctx context.Context, carts port.CartStore, cartID string) (*entity.Cart, error) {
	cart, err := carts.Get(ctx, cartID)
	if err != nil {
		if errors.Is(err, entity.ErrCartNotFound) {
			return entity.NewCart(cartID), nil
		}
		return nil, err
	}
	return cart, nil
}
