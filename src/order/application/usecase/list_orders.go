package usecase

import (
	"context"

	"github.com/JosueLm7/PanaderiaDelicia/src/order/application/response"
	"github.com/JosueLm7/PanaderiaDelicia/src/order/domain/entity"
	"github.com/JosueLm7/PanaderiaDelicia/src/order/domain/port"
)

// ListOrdersUseCase caso de uso para listar los pedidos de un usuario
type ListOrdersUseCase struct {
	orderRepo port.OrderRepository
}

// NewListOrdersUseCase crea una nueva instancia del caso de uso
func NewListOrdersUseCase(orderRepo port.OrderRepository) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo: orderRepo,
	}
}

// Execute retorna los pedidos del usuario, más reciente primero, cada uno con sus líneas.
// La falta de user_id se rechaza antes de consultar la base.
func (uc *ListOrdersUseCase) Execute(ctx context.Context, userID string) ([]response.OrderResponse, error) {
	if userID == "" {
		return nil, entity.ErrUserIDRequired
	}

	orders, err := uc.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]response.OrderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, *toOrderResponse(order))
	}

	return result, nil
}
