package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JosueLm7/PanaderiaDelicia/src/order/application/usecase"
	"github.com/JosueLm7/PanaderiaDelicia/src/order/domain/entity"
	"github.com/JosueLm7/PanaderiaDelicia/src/order/infrastructure/cache"
	paymentUseCase "github.com/JosueLm7/PanaderiaDelicia/src/payment/application/usecase"
)

type mockOrderRepository struct {
	saved     []*entity.Order
	saveErr   error
	saveCalls int
}

func (m *mockOrderRepository) Save(ctx context.Context, order *entity.Order) error {
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, order)
	return nil
}

func (m *mockOrderRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	var orders []*entity.Order
	for _, order := range m.saved {
		if order.UserID == userID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (m *mockOrderRepository) FindByNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	for _, order := range m.saved {
		if order.OrderNumber == orderNumber {
			return order, nil
		}
	}
	return nil, entity.ErrOrderNotFound
}

func setupOrderRouter(repo *mockOrderRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	paymentMethods := cache.NewPaymentMethodCache()
	orderController := NewOrderController(
		usecase.NewCreateOrderUseCase(repo, paymentMethods),
		usecase.NewListOrdersUseCase(repo),
		usecase.NewGetOrderUseCase(repo),
		paymentUseCase.NewProcessPaymentUseCase(paymentUseCase.AlwaysApprove{}),
		nil,
	)
	orderController.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func validOrderBody() map[string]interface{} {
	return map[string]interface{}{
		"user_id":          "user-42",
		"customer_name":    "María López",
		"customer_phone":   "987654321",
		"customer_email":   "maria@example.com",
		"delivery_address": "Av. Los Pinos 123",
		"delivery_date":    time.Now().AddDate(0, 0, 2).Format("2006-01-02"),
		"delivery_time":    "10:00",
		"payment_method":   "efectivo",
		"items": []map[string]interface{}{
			{"id": 1, "name": "Pan Francés", "price": "2.50", "quantity": 4},
			{"id": 3, "name": "Torta de Chocolate", "price": "45.00", "quantity": 1},
		},
	}
}

func postOrder(router *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/orders", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCreateOrder_Success(t *testing.T) {
	repo := &mockOrderRepository{}
	router := setupOrderRouter(repo)

	w := postOrder(router, validOrderBody())

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Order   struct {
			OrderNumber string `json:"order_number"`
			Subtotal    string `json:"subtotal"`
			Total       string `json:"total"`
		} `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Regexp(t, `^PD-\d+$`, resp.Order.OrderNumber)
	assert.Equal(t, "55.00", resp.Order.Subtotal)
	assert.Equal(t, "60.00", resp.Order.Total)
	assert.Equal(t, 1, repo.saveCalls)
}

func TestCreateOrder_CardPayment(t *testing.T) {
	repo := &mockOrderRepository{}
	router := setupOrderRouter(repo)

	body := validOrderBody()
	body["payment_method"] = "tarjeta"
	body["card"] = map[string]string{
		"number": "4111 1111 1111 1111",
		"expiry": "12/28",
		"cvv":    "123",
		"holder": "MARIA LOPEZ",
	}

	w := postOrder(router, body)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	transactionID, ok := resp["transaction_id"].(string)
	require.True(t, ok)
	assert.Regexp(t, `^TXN-`, transactionID)
}

func TestCreateOrder_CardMissing(t *testing.T) {
	repo := &mockOrderRepository{}
	router := setupOrderRouter(repo)

	body := validOrderBody()
	body["payment_method"] = "tarjeta"

	w := postOrder(router, body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, repo.saveCalls)
}

func TestCreateOrder_EmptyCart(t *testing.T) {
	repo := &mockOrderRepository{}
	router := setupOrderRouter(repo)

	body := validOrderBody()
	body["items"] = []map[string]interface{}{}

	w := postOrder(router, body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), entity.ErrOrderMustHaveItems.Error())
	assert.Equal(t, 0, repo.saveCalls)
}

func TestCreateOrder_UnknownPaymentMethod(t *testing.T) {
	router := setupOrderRouter(&mockOrderRepository{})

	body := validOrderBody()
	body["payment_method"] = "bitcoin"

	w := postOrder(router, body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), entity.ErrInvalidPaymentMethod.Error())
}

func TestCreateOrder_StoreFailure(t *testing.T) {
	router := setupOrderRouter(&mockOrderRepository{saveErr: errors.New("connection reset")})

	w := postOrder(router, validOrderBody())

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Error creating order")
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestCreateOrder_InvalidBody(t *testing.T) {
	router := setupOrderRouter(&mockOrderRepository{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/orders", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListOrders_MissingUserID(t *testing.T) {
	router := setupOrderRouter(&mockOrderRepository{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User ID is required")
}

func TestListOrders_ReturnsUserOrders(t *testing.T) {
	repo := &mockOrderRepository{}
	router := setupOrderRouter(repo)

	require.Equal(t, http.StatusOK, postOrder(router, validOrderBody()).Code)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/orders?user_id=user-42", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var orders []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "user-42", orders[0]["user_id"])
}

func TestGetOrder_RoundtripAndNotFound(t *testing.T) {
	repo := &mockOrderRepository{}
	router := setupOrderRouter(repo)

	require.Equal(t, http.StatusOK, postOrder(router, validOrderBody()).Code)
	require.Len(t, repo.saved, 1)
	orderNumber := repo.saved[0].OrderNumber

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/orders/%s", orderNumber), nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), orderNumber)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/v1/orders/PD-0", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderRoutes_DatabaseNotConfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	orderController := NewOrderController(nil, nil, nil, nil, nil)
	orderController.RegisterRoutes(router.Group("/api/v1"))

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/orders"},
		{http.MethodGet, "/api/v1/orders?user_id=user-42"},
		{http.MethodGet, "/api/v1/orders/PD-1"},
	} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(tc.method, tc.path, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, tc.path)
	}
}
