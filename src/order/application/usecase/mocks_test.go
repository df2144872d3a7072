package usecase

import (
	"context"
	"sync"

	"github.com/JosueLm7/PanaderiaDelicia/src/order/domain/entity"
)

// mockOrderRepository implementación en memoria de OrderRepository para tests.
// Cuenta las llamadas para poder verificar que las validaciones rechazan antes
// de tocar la base.
type mockOrderRepository struct {
	mu        sync.Mutex
	orders    []*entity.Order
	saveErr   error
	findErr   error
	saveCalls int
	findCalls int
}

func (m *mockOrderRepository) Save(_ context.Context, order *entity.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}

	order.ID = int64(len(m.orders) + 1)
	m.orders = append(m.orders, order)
	return nil
}

func (m *mockOrderRepository) FindByUser(_ context.Context, userID string) ([]*entity.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.findCalls++
	if m.findErr != nil {
		return nil, m.findErr
	}

	// Más reciente primero, como lo haría la consulta real
	var result []*entity.Order
	for i := len(m.orders) - 1; i >= 0; i-- {
		if m.orders[i].UserID == userID {
			result = append(result, m.orders[i])
		}
	}
	return result, nil
}

func (m *mockOrderRepository) FindByNumber(_ context.Context, orderNumber string) (*entity.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.findCalls++
	if m.findErr != nil {
		return nil, m.findErr
	}

	for _, order := range m.orders {
		if order.OrderNumber == orderNumber {
			return order, nil
		}
	}
	return nil, entity.ErrOrderNotFound
}
