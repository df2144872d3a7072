package usecase

import (
	"context"

	"github.com/JosueLm7/PanaderiaDelicia/src/catalog/domain/entity"
	"github.com/JosueLm7/PanaderiaDelicia/src/catalog/domain/port"
)

// ListProductsUseCase caso de uso para listar el catálogo activo
type ListProductsUseCase struct {
	productRepo port.ProductRepository
}

// NewListProductsUseCase crea una nueva instancia del caso de uso
func NewListProductsUseCase(productRepo port.ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
	}
}

// Execute retorna los productos activos ordenados por id ascendente.
// Sin paginación ni cache: refleja el estado del catálogo al momento de la llamada.
func (uc *ListProductsUseCase) Execute(ctx context.Context) ([]entity.Product, error) {
	products, err := uc.productRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	if products == nil {
		products = []entity.Product{}
	}
	return products, nil
}
