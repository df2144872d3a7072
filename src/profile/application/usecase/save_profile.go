package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/JosueLm7/PanaderiaDelicia/src/profile/application/request"
	"github.com/JosueLm7/PanaderiaDelicia/src/profile/domain/entity"
	"github.com/JosueLm7/PanaderiaDelicia/src/profile/domain/port"
)

// SaveProfileUseCase caso de uso para crear o actualizar un perfil
type SaveProfileUseCase struct {
	profileRepo port.ProfileRepository
}

// NewSaveProfileUseCase crea una nueva instancia del caso de uso
func NewSaveProfileUseCase(profileRepo port.ProfileRepository) *SaveProfileUseCase {
	return &SaveProfileUseCase{
		profileRepo: profileRepo,
	}
}

// Execute guarda el perfil (insert o update según exista)
func (uc *SaveProfileUseCase) Execute(ctx context.Context, req *request.SaveProfileRequest) (*entity.Profile, error) {
	if req.UserID == "" {
		return nil, entity.ErrUserIDRequired
	}

	profile := &entity.Profile{
		UserID:    req.UserID,
		FullName:  req.FullName,
		Phone:     req.Phone,
		Address:   req.Address,
		UpdatedAt: time.Now(),
	}

	if err := uc.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("error saving profile: %w", err)
	}

	return profile, nil
}
