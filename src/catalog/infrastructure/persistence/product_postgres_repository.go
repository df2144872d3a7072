package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JosueLm7/PanaderiaDelicia/src/catalog/domain/entity"
)

// ProductPostgresRepository implementa ProductRepository usando PostgreSQL
type ProductPostgresRepository struct {
	db *sql.DB
}

// NewProductPostgresRepository crea una nueva instancia del repositorio
func NewProductPostgresRepository(db *sql.DB) *ProductPostgresRepository {
	return &ProductPostgresRepository{
		db: db,
	}
}

// FindActive retorna los productos activos ordenados por id
func (r *ProductPostgresRepository) FindActive(ctx context.Context) ([]entity.Product, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), price, category, COALESCE(image_url, ''), active, created_at
		FROM products
		WHERE active = true
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing products: %w", err)
	}
	defer rows.Close()

	var products []entity.Product
	for rows.Next() {
		var p entity.Product
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.Price,
			&p.Category,
			&p.ImageURL,
			&p.Active,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning product: %w", err)
		}
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
