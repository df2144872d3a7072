package usecase

import (
	"time"

	"github.com/JosueLm7/PanaderiaDelicia/src/order/application/response"
	"github.com/JosueLm7/PanaderiaDelicia/src/order/domain/entity"
)

// toOrderResponse convierte el aggregate Order a su DTO de respuesta
func toOrderResponse(order *entity.Order) *response.OrderResponse {
	var items []response.OrderItemResponse
	for _, item := range order.Items {
		items = append(items, response.OrderItemResponse{
			ItemID:       item.ItemID,
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductPrice: item.ProductPrice,
			Quantity:     item.Quantity,
			Subtotal:     item.Subtotal,
		})
	}

	return &response.OrderResponse{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		UserID:          order.UserID,
		CustomerName:    order.CustomerName,
		CustomerPhone:   order.CustomerPhone,
		CustomerEmail:   order.CustomerEmail,
		DeliveryAddress: order.DeliveryAddress,
		DeliveryDate:    order.DeliveryDate,
		DeliveryTime:    order.DeliveryTime,
		Notes:           order.Notes,
		Subtotal:        order.Subtotal,
		Shipping:        order.Shipping,
		Total:           order.Total,
		PaymentMethod:   order.PaymentMethod,
		Status:          string(order.Status),
		CreatedAt:       order.CreatedAt.Format(time.RFC3339),
		Items:           items,
	}
}
