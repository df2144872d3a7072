package port

import (
	"context"

	"github.com/JosueLm7/PanaderiaDelicia/src/cart/domain/entity"
)

// CartStore define la persistencia del carrito por sesión.
// La implementación por defecto es un mapa en memoria; detrás de este puerto
// puede colgarse un backend externo sin tocar los casos de uso.
type CartStore interface {
	Get(ctx context.Context, cartID string) (*entity.Cart, error)
	Save(ctx context.Context, cart *entity.Cart) error
	Delete(ctx context.Context, cartID string) error
}
