package port

import (
	"context"

	"github.com/JosueLm7/PanaderiaDelicia/src/order/domain/entity"
)

// OrderRepository define los métodos para persistir pedidos
type OrderRepository interface {
	Save(ctx context.Context, order *entity.Order) error
	FindByUser(ctx context.Context, userID string) ([]*entity.Order, error)
	FindByNumber(ctx context.Context, orderNumber string) (*entity.Order, error)
}
