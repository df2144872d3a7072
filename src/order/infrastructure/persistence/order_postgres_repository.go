package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JosueLm7/PanaderiaDelicia/src/order/domain/entity"
)

// OrderPostgresRepository implementa OrderRepository usando PostgreSQL
type OrderPostgresRepository struct {
	db *sql.DB
}

// NewOrderPostgresRepository crea una nueva instancia del repositorio
func NewOrderPostgresRepository(db *sql.DB) *OrderPostgresRepository {
	return &OrderPostgresRepository{
		db: db,
	}
}

// Save persiste el pedido con sus líneas en la base de datos.
// Cabecera y líneas van en una sola transacción: o se insertan todas las filas
// o ninguna. Nunca queda una cabecera sin líneas.
func (r *OrderPostgresRepository) Save(ctx context.Context, order *entity.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	// 1. Insertar cabecera del pedido
	queryOrder := `
		INSERT INTO orders (
			order_number, user_id, customer_name, customer_phone, customer_email,
			delivery_address, delivery_date, delivery_time, notes,
			subtotal, shipping, total, payment_method, status, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		)
		RETURNING id
	`

	err = tx.QueryRowContext(ctx, queryOrder,
		order.OrderNumber,
		order.UserID,
		order.CustomerName,
		order.CustomerPhone,
		order.CustomerEmail,
		order.DeliveryAddress,
		order.DeliveryDate,
		order.DeliveryTime,
		order.Notes,
		order.Subtotal,
		order.Shipping,
		order.Total,
		order.PaymentMethod,
		order.Status,
		order.CreatedAt,
	).Scan(&order.ID)

	if err != nil {
		return fmt.Errorf("error saving order: %w", err)
	}

	// 2. Insertar líneas del pedido
	queryItem := `
		INSERT INTO order_items (
			item_id, order_id, product_id, product_name, product_price, quantity, subtotal, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
	`

	for i := range order.Items {
		order.Items[i].OrderID = order.ID

		_, err = tx.ExecContext(ctx, queryItem,
			order.Items[i].ItemID,
			order.ID,
			order.Items[i].ProductID,
			order.Items[i].ProductName,
			order.Items[i].ProductPrice,
			order.Items[i].Quantity,
			order.Items[i].Subtotal,
			order.CreatedAt,
		)

		if err != nil {
			return fmt.Errorf("error saving order item: %w", err)
		}
	}

	// Commit transacción
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// FindByUser retorna los pedidos de un usuario con sus líneas, más reciente primero
func (r *OrderPostgresRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	queryOrders := `
		SELECT id, order_number, user_id, customer_name, customer_phone, customer_email,
		       delivery_address, delivery_date, delivery_time, COALESCE(notes, ''),
		       subtotal, shipping, total, payment_method, status, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, queryOrders, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		order := &entity.Order{}
		err := rows.Scan(
			&order.ID,
			&order.OrderNumber,
			&order.UserID,
			&order.CustomerName,
			&order.CustomerPhone,
			&order.CustomerEmail,
			&order.DeliveryAddress,
			&order.DeliveryDate,
			&order.DeliveryTime,
			&order.Notes,
			&order.Subtotal,
			&order.Shipping,
			&order.Total,
			&order.PaymentMethod,
			&order.Status,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning order: %w", err)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	// Cargar líneas de cada pedido
	for _, order := range orders {
		items, err := r.loadItems(ctx, order.ID)
		if err != nil {
			return nil, fmt.Errorf("error loading items for order %s: %w", order.OrderNumber, err)
		}
		order.Items = items
	}

	return orders, nil
}

// FindByNumber busca un pedido con sus líneas por su número público
func (r *OrderPostgresRepository) FindByNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	queryOrder := `
		SELECT id, order_number, user_id, customer_name, customer_phone, customer_email,
		       delivery_address, delivery_date, delivery_time, COALESCE(notes, ''),
		       subtotal, shipping, total, payment_method, status, created_at
		FROM orders
		WHERE order_number = $1
	`

	order := &entity.Order{}
	err := r.db.QueryRowContext(ctx, queryOrder, orderNumber).Scan(
		&order.ID,
		&order.OrderNumber,
		&order.UserID,
		&order.CustomerName,
		&order.CustomerPhone,
		&order.CustomerEmail,
		&order.DeliveryAddress,
		&order.DeliveryDate,
		&order.DeliveryTime,
		&order.Notes,
		&order.Subtotal,
		&order.Shipping,
		&order.Total,
		&order.PaymentMethod,
		&order.Status,
		&order.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding order: %w", err)
	}

	items, err := r.loadItems(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("error loading order items: %w", err)
	}
	order.Items = items

	return order, nil
}

// loadItems carga las líneas de un pedido
func (r *OrderPostgresRepository) loadItems(ctx context.Context, orderID int64) ([]entity.OrderItem, error) {
	queryItems := `
		SELECT item_id, order_id, product_id, product_name, product_price, quantity, subtotal
		FROM order_items
		WHERE order_id = $1
		ORDER BY product_id
	`

	rows, err := r.db.QueryContext(ctx, queryItems, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		err := rows.Scan(
			&item.ItemID,
			&item.OrderID,
			&item.ProductID,
			&item.ProductName,
			&item.ProductPrice,
			&item.Quantity,
			&item.Subtotal,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
