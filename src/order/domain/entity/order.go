package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus representa el estado de un pedido
type OrderStatus string

const (
	// OrderStatusPendiente es el único estado que escribe este servicio.
	// Las transiciones posteriores (confirmado, entregado) ocurren fuera de él.
	OrderStatusPendiente OrderStatus = "pendiente"
)

// DefaultShipping es el costo de envío aplicado cuando el cliente no indica uno
var DefaultShipping = decimal.NewFromFloat(5.00)

// Order representa un pedido de la panadería (Aggregate Root).
// Un pedido contiene una o más líneas OrderItem.
type Order struct {
	ID            int64  `json:"id"`
	OrderNumber   string `json:"order_number"`
	UserID        string `json:"user_id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`

	DeliveryAddress string `json:"delivery_address"`
	DeliveryDate    string `json:"delivery_date"`
	DeliveryTime    string `json:"delivery_time"`
	Notes           string `json:"notes"`

	Subtotal      decimal.Decimal `json:"subtotal"`
	Shipping      decimal.Decimal `json:"shipping"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	Status        OrderStatus     `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`

	Items []OrderItem `json:"items"`
}

// NewOrder crea un nuevo pedido a partir del formulario de checkout y sus líneas.
// El subtotal se calcula siempre a partir de las líneas; nunca se acepta un
// subtotal externo. Total = subtotal + envío.
func NewOrder(userID string, form CheckoutForm, items []OrderItem, paymentMethod string, shipping decimal.Decimal) (*Order, error) {
	if userID == "" {
		return nil, ErrUserIDRequired
	}
	if len(items) == 0 {
		return nil, ErrOrderMustHaveItems
	}
	if paymentMethod == "" {
		return nil, ErrInvalidPaymentMethod
	}
	if shipping.LessThan(decimal.Zero) {
		return nil, ErrInvalidShipping
	}

	now := time.Now()
	if err := form.Validate(now); err != nil {
		return nil, err
	}

	// Calcular subtotal (suma de subtotales de línea)
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Subtotal)
	}

	return &Order{
		OrderNumber:     NewOrderNumber(),
		UserID:          userID,
		CustomerName:    form.CustomerName,
		CustomerPhone:   form.CustomerPhone,
		CustomerEmail:   form.CustomerEmail,
		DeliveryAddress: form.DeliveryAddress,
		DeliveryDate:    form.DeliveryDate,
		DeliveryTime:    form.DeliveryTime,
		Notes:           form.Notes,
		Subtotal:        subtotal,
		Shipping:        shipping,
		Total:           subtotal.Add(shipping),
		PaymentMethod:   paymentMethod,
		Status:          OrderStatusPendiente,
		CreatedAt:       now,
		Items:           items,
	}, nil
}

// TotalItems retorna el número total de líneas
func (o *Order) TotalItems() int {
	return len(o.Items)
}
