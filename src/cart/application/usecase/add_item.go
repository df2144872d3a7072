package usecase

import (
	"context"

	"github.com/JosueLm7/PanaderiaDelicia/src/cart/application/request"
	"github.com/JosueLm7/PanaderiaDelicia/src/cart/application/response"
	"github.com/JosueLm7/PanaderiaDelicia/src/cart/domain/port"
)

// AddItemUseCase caso de uso para agregar un producto al carrito
type AddItemUseCase struct {
	carts port.CartStore
}

// NewAddItemUseCase crea una nueva instancia del caso de uso
func NewAddItemUseCase(carts port.CartStore) *AddItemUseCase {
	return &AddItemUseCase{
		carts: carts,
	}
}

// Execute agrega el producto (o incrementa su cantidad) y guarda el carrito
func (uc *AddItemUseCase) Execute(ctx context.Context, cartID string, req *request.AddItemRequest) (*response.CartResponse, error) {
	cart, err := loadOrCreate(ctx, uc.carts, cartID)
	if err != nil {
		return nil, err
	}

	if err := cart.AddItem(req.ID, req.Name, req.Price, req.ImageURL); err != nil {
		return nil, err
	}

	if err := uc.carts.Save(ctx, cart); err != nil {
		return nil, err
	}

	return response.NewCartResponse(cart), nil
}
