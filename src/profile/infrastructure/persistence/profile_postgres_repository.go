package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JosueLm7/PanaderiaDelicia/src/profile/domain/entity"
)

// ProfilePostgresRepository implementa ProfileRepository usando PostgreSQL
type ProfilePostgresRepository struct {
	db *sql.DB
}

// NewProfilePostgresRepository crea una nueva instancia del repositorio
func NewProfilePostgresRepository(db *sql.DB) *ProfilePostgresRepository {
	return &ProfilePostgresRepository{
		db: db,
	}
}

// FindByUserID busca el perfil de un usuario
func (r *ProfilePostgresRepository) FindByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	query := `
		SELECT user_id, COALESCE(full_name, ''), COALESCE(phone, ''), COALESCE(address, ''), created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`

	profile := &entity.Profile{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.FullName,
		&profile.Phone,
		&profile.Address,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding profile: %w", err)
	}

	return profile, nil
}

// Upsert inserta el perfil o actualiza sus datos de contacto si ya existe
func (r *ProfilePostgresRepository) Upsert(ctx context.Context, profile *entity.Profile) error {
	query := `
		INSERT INTO profiles (user_id, full_name, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET full_name = EXCLUDED.full_name,
		    phone = EXCLUDED.phone,
		    address = EXCLUDED.address,
		    updated_at = NOW()
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		profile.UserID,
		profile.FullName,
		profile.Phone,
		profile.Address,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error upserting profile: %w", err)
	}

	return nil
}
