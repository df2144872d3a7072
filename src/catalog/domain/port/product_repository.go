package port

import (
	"context"

	"github.com/JosueLm7/PanaderiaDelicia/src/catalog/domain/entity"
)

// ProductRepository define la lectura del catálogo
type ProductRepository interface {
	FindActive(ctx context.Context) ([]entity.Product, error)
}
