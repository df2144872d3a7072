package port

import (
	"context"

	"github.com/JosueLm7/PanaderiaDelicia/src/profile/domain/entity"
)

// ProfileRepository define la persistencia de perfiles de cliente
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*entity.Profile, error)
	Upsert(ctx context.Context, profile *entity.Profile) error
}
