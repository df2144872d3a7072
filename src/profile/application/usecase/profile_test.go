package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JosueLm7/PanaderiaDelicia/src/profile/application/request"
	"github.com/JosueLm7/PanaderiaDelicia/src/profile/domain/entity"
)

type mockProfileRepository struct {
	profiles    map[string]*entity.Profile
	upsertErr   error
	findCalls   int
	upsertCalls int
}

func newMockProfileRepository() *mockProfileRepository {
	return &mockProfileRepository{profiles: make(map[string]*entity.Profile)}
}

func (m *mockProfileRepository) FindByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	m.findCalls++
	profile, ok := m.profiles[userID]
	if !ok {
		return nil, entity.ErrProfileNotFound
	}
	return profile, nil
}

func (m *mockProfileRepository) Upsert(ctx context.Context, profile *entity.Profile) error {
	m.upsertCalls++
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.profiles[profile.UserID] = profile
	return nil
}

func TestGetProfile_MissingUserID(t *testing.T) {
	repo := newMockProfileRepository()
	uc := NewGetProfileUseCase(repo)

	_, err := uc.Execute(context.Background(), "")
	assert.ErrorIs(t, err, entity.ErrUserIDRequired)
	assert.Equal(t, 0, repo.findCalls, "no debe consultar el repositorio sin user_id")
}

func TestGetProfile_NotFound(t *testing.T) {
	uc := NewGetProfileUseCase(newMockProfileRepository())

	_, err := uc.Execute(context.Background(), "user-42")
	assert.ErrorIs(t, err, entity.ErrProfileNotFound)
}

func TestSaveProfile_MissingUserID(t *testing.T) {
	repo := newMockProfileRepository()
	uc := NewSaveProfileUseCase(repo)

	_, err := uc.Execute(context.Background(), &request.SaveProfileRequest{FullName: "María López"})
	assert.ErrorIs(t, err, entity.ErrUserIDRequired)
	assert.Equal(t, 0, repo.upsertCalls)
}

func TestSaveProfile_Roundtrip(t *testing.T) {
	repo := newMockProfileRepository()
	saveUC := NewSaveProfileUseCase(repo)
	getUC := NewGetProfileUseCase(repo)

	saved, err := saveUC.Execute(context.Background(), &request.SaveProfileRequest{
		UserID:   "user-42",
		FullName: "María López",
		Phone:    "987654321",
		Address:  "Av. Los Pinos 123",
	})
	require.NoError(t, err)
	assert.Equal(t, "María López", saved.FullName)

	found, err := getUC.Execute(context.Background(), "user-42")
	require.NoError(t, err)
	assert.Equal(t, saved, found)
}

func TestSaveProfile_OverwritesExisting(t *testing.T) {
	repo := newMockProfileRepository()
	uc := NewSaveProfileUseCase(repo)

	_, err := uc.Execute(context.Background(), &request.SaveProfileRequest{
		UserID: "user-42", Phone: "987654321",
	})
	require.NoError(t, err)

	updated, err := uc.Execute(context.Background(), &request.SaveProfileRequest{
		UserID: "user-42", Phone: "912345678",
	})
	require.NoError(t, err)
	assert.Equal(t, "912345678", updated.Phone)
	assert.Equal(t, 2, repo.upsertCalls)
}

func TestSaveProfile_StoreFailure(t *testing.T) {
	repo := newMockProfileRepository()
	repo.upsertErr = errors.New("connection reset")
	uc := NewSaveProfileUseCase(repo)

	_, err := uc.Execute(context.Background(), &request.SaveProfileRequest{UserID: "user-42"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error saving profile")
}
