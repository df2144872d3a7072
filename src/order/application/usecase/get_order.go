package usecase

import (
	"context"

	"github.com/JosueLm7/PanaderiaDelicia/src/order/application/response"
	"github.com/JosueLm7/PanaderiaDelicia/src/order/domain/port"
)

// GetOrderUseCase caso de uso para obtener un pedido por su número
type GetOrderUseCase struct {
	orderRepo port.OrderRepository
}

// NewGetOrderUseCase crea una nueva instancia del caso de uso
func NewGetOrderUseCase(orderRepo port.OrderRepository) *GetOrderUseCase {
	return &GetOrderUseCase{
		orderRepo: orderRepo,
	}
}

// Execute busca el pedido por número de pedido (PD-...)
func (uc *GetOrderUseCase) Execute(ctx context.Context, orderNumber string) (*response.OrderResponse, error) {
	order, err := uc.orderRepo.FindByNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}

	return toOrderResponse(order), nil
}
