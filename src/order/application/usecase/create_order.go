package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/JosueLm7/PanaderiaDelicia/src/order/application/request"
	"github.com/JosueLm7/PanaderiaDelicia/src/order/application/response"
	"github.com/JosueLm7/PanaderiaDelicia/src/order/domain/entity"
	"github.com/JosueLm7/PanaderiaDelicia/src/order/domain/port"
	"github.com/JosueLm7/PanaderiaDelicia/src/order/infrastructure/cache"
)

// CreateOrderUseCase caso de uso para crear un pedido
type CreateOrderUseCase struct {
	orderRepo      port.OrderRepository
	paymentMethods *cache.PaymentMethodCache
}

// NewCreateOrderUseCase crea una nueva instancia del caso de uso
func NewCreateOrderUseCase(orderRepo port.OrderRepository, paymentMethods *cache.PaymentMethodCache) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo:      orderRepo,
		paymentMethods: paymentMethods,
	}
}

// Execute ejecuta la creación del pedido:
// 1. Validar método de pago contra el cache
// 2. Construir las líneas con snapshot de nombre y precio
// 3. Construir el aggregate Order (valida formulario, recalcula subtotal y total)
// 4. Persistir cabecera y líneas en una sola transacción
// Toda validación ocurre antes de tocar la base de datos.
func (uc *CreateOrderUseCase) Execute(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	if !uc.paymentMethods.IsValid(req.PaymentMethod) {
		return nil, entity.ErrInvalidPaymentMethod
	}
	if len(req.Items) == 0 {
		return nil, entity.ErrOrderMustHaveItems
	}

	// Construir líneas con snapshot de producto
	var items []entity.OrderItem
	for _, itemReq := range req.Items {
		item, err := entity.NewOrderItem(itemReq.ID, itemReq.Name, itemReq.Price, itemReq.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	// Envío por defecto si el cliente no lo indica
	shipping := entity.DefaultShipping
	if req.Shipping != nil {
		shipping = *req.Shipping
	}

	form := entity.CheckoutForm{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryDate:    req.DeliveryDate,
		DeliveryTime:    req.DeliveryTime,
		Notes:           req.Notes,
	}

	order, err := entity.NewOrder(req.UserID, form, items, req.PaymentMethod, shipping)
	if err != nil {
		return nil, err
	}

	// El subtotal del cliente no se usa; si difiere del recalculado queda registrado
	if !req.Subtotal.IsZero() && !req.Subtotal.Equal(order.Subtotal) {
		log.Printf("⚠️  Subtotal del cliente (%s) difiere del calculado (%s) para %s",
			req.Subtotal.String(), order.Subtotal.String(), order.OrderNumber)
	}

	if err := uc.orderRepo.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("error saving order: %w", err)
	}

	return toOrderResponse(order), nil
}
