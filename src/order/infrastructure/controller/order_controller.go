package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/JosueLm7/PanaderiaDelicia/src/order/application/request"
	"github.com/JosueLm7/PanaderiaDelicia/src/order/application/usecase"
	"github.com/JosueLm7/PanaderiaDelicia/src/order/domain/entity"
	paymentUseCase "github.com/JosueLm7/PanaderiaDelicia/src/payment/application/usecase"
	paymentEntity "github.com/JosueLm7/PanaderiaDelicia/src/payment/domain/entity"
	"github.com/JosueLm7/PanaderiaDelicia/src/shared/infrastructure/metrics"
)

// OrderController maneja las peticiones HTTP para pedidos
type OrderController struct {
	createOrderUC    *usecase.CreateOrderUseCase
	listOrdersUC     *usecase.ListOrdersUseCase
	getOrderUC       *usecase.GetOrderUseCase
	processPaymentUC *paymentUseCase.ProcessPaymentUseCase
	metrics          *metrics.ServerMetrics
}

// NewOrderController crea una nueva instancia del controlador
func NewOrderController(
	createOrderUC *usecase.CreateOrderUseCase,
	listOrdersUC *usecase.ListOrdersUseCase,
	getOrderUC *usecase.GetOrderUseCase,
	processPaymentUC *paymentUseCase.ProcessPaymentUseCase,
	m *metrics.ServerMetrics,
) *OrderController {
	return &OrderController{
		createOrderUC:    createOrderUC,
		listOrdersUC:     listOrdersUC,
		getOrderUC:       getOrderUC,
		processPaymentUC: processPaymentUC,
		metrics:          m,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *OrderController) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/orders")
	{
		orders.GET("", c.ListOrders)
		orders.GET("/:order_number", c.GetOrder)
		orders.POST("", c.CreateOrder)
	}

	log.Println("Rutas Order disponibles:")
	log.Println("  GET    /api/v1/orders?user_id=<id>")
	log.Println("  GET    /api/v1/orders/:order_number")
	log.Println("  POST   /api/v1/orders")
}

// CreateOrder maneja el envío del checkout.
// Los datos de tarjeta se validan y cobran aquí, en la capa de presentación;
// el caso de uso solo recibe el método de pago ya resuelto.
func (c *OrderController) CreateOrder(ctx *gin.Context) {
	if c.createOrderUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Order creation not available (database not configured)",
		})
		return
	}

	var req request.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// Cargo simulado solo para tarjeta; transferencia y efectivo se pagan fuera
	var transactionID string
	if req.PaymentMethod == "tarjeta" {
		if req.Card == nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": paymentEntity.ErrCardDataIncomplete.Error()})
			return
		}

		card := paymentEntity.CardDetails{
			Number: req.Card.Number,
			Expiry: req.Card.Expiry,
			CVV:    req.Card.CVV,
			Holder: req.Card.Holder,
		}

		charge, err := c.processPaymentUC.Execute(card, chargeAmount(&req))
		if err != nil {
			if errors.Is(err, paymentEntity.ErrPaymentDeclined) {
				ctx.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		transactionID = charge.TransactionID
	}

	order, err := c.createOrderUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		if isValidationError(err) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		log.Printf("Error creating order: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating order"})
		return
	}

	if c.metrics != nil {
		c.metrics.OrdersCreated.Inc()
	}

	resp := gin.H{
		"success": true,
		"order":   order,
	}
	if transactionID != "" {
		resp["transaction_id"] = transactionID
	}

	ctx.JSON(http.StatusOK, resp)
}

// ListOrders lista los pedidos de un usuario, más reciente primero
func (c *OrderController) ListOrders(ctx *gin.Context) {
	if c.listOrdersUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Order listing not available (database not configured)",
		})
		return
	}

	userID := ctx.Query("user_id")
	if userID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	orders, err := c.listOrdersUC.Execute(ctx.Request.Context(), userID)
	if err != nil {
		log.Printf("Error fetching orders: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching orders"})
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

// GetOrder obtiene un pedido por su número público
func (c *OrderController) GetOrder(ctx *gin.Context) {
	if c.getOrderUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Order lookup not available (database not configured)",
		})
		return
	}

	orderNumber := ctx.Param("order_number")

	order, err := c.getOrderUC.Execute(ctx.Request.Context(), orderNumber)
	if err != nil {
		if errors.Is(err, entity.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		log.Printf("Error fetching order %s: %v", orderNumber, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching order"})
		return
	}

	ctx.JSON(http.StatusOK, order)
}

// chargeAmount calcula el monto a cobrar a partir de las líneas enviadas.
// El subtotal del cliente no se usa aquí tampoco.
func chargeAmount(req *request.CreateOrderRequest) decimal.Decimal {
	amount := decimal.Zero
	for _, item := range req.Items {
		amount = amount.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	if req.Shipping != nil {
		return amount.Add(*req.Shipping)
	}
	return amount.Add(entity.DefaultShipping)
}

// isValidationError distingue rechazos de validación de fallos de la base de datos
func isValidationError(err error) bool {
	for _, target := range []error{
		entity.ErrUserIDRequired,
		entity.ErrOrderMustHaveItems,
		entity.ErrInvalidPaymentMethod,
		entity.ErrCustomerNameRequired,
		entity.ErrCustomerPhoneRequired,
		entity.ErrCustomerEmailRequired,
		entity.ErrDeliveryAddressRequired,
		entity.ErrDeliveryDateRequired,
		entity.ErrDeliveryTimeRequired,
		entity.ErrInvalidDeliveryDate,
		entity.ErrProductIDRequired,
		entity.ErrProductNameRequired,
		entity.ErrInvalidQuantity,
		entity.ErrInvalidPrice,
		entity.ErrInvalidShipping,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
