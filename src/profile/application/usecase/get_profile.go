package usecase

import (
	"context"

	"github.com/JosueLm7/PanaderiaDelicia/src/profile/domain/entity"
	"github.com/JosueLm7/PanaderiaDelicia/src/profile/domain/port"
)

// GetProfileUseCase caso de uso para consultar el perfil de un usuario
type GetProfileUseCase struct {
	profileRepo port.ProfileRepository
}

// NewGetProfileUseCase crea una nueva instancia del caso de uso
func NewGetProfileUseCase(profileRepo port.ProfileRepository) *GetProfileUseCase {
	return &GetProfileUseCase{
		profileRepo: profileRepo,
	}
}

// Execute busca el perfil por user_id
func (uc *GetProfileUseCase) Execute(ctx context.Context, userID string) (*entity.Profile, error) {
	if userID == "" {
		return nil, entity.ErrUserIDRequired
	}

	return uc.profileRepo.FindByUserID(ctx, userID)
}
