package bank

import (
	"context"
	"errors"
	"testing"

	apperrors "bankagent/internal/errors"
	"bankagent/internal/models"
	"bankagent/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepo struct {
	mock.Mock
}

func (m *MockRepo) Create(ctx context.Context, bank *models.Bank) error {
	args := m.Called(ctx, bank)
	if args.Error(0) == nil {
		bank.ID = 42
	}
	return args.Error(0)
}

func (m *MockRepo) GetByID(ctx context.Context, id uint) (*models.Bank, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bank), args.Error(1)
}

func (m *MockRepo) GetByUUID(ctx context.Context, id uuid.UUID) (*models.Bank, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bank), args.Error(1)
}

func (m *MockRepo) List(ctx context.Context) ([]models.Bank, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Bank), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetBank(ctx context.Context, id uint) (*models.Bank, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bank), args.Error(1)
}

func (m *MockCache) CacheBank(ctx context.Context, bank *models.Bank) error {
	return m.Called(ctx, bank).Error(0)
}

func (m *MockCache) InvalidateBank(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

var stored = &models.Bank{
	ID:    3,
	Name:  "First Bank",
	UUID:  uuid.MustParse("5b1c9c3e-2f7a-4a55-8d0e-7f2b3c4d5e6f"),
	Token: "s3cret",
	URL:   "http://bank.local/api/",
}

func TestService_Get(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(*MockRepo, *MockCache)
		wantErr error
	}{
		{
			name: "cache hit skips database",
			setup: func(r *MockRepo, c *MockCache) {
				c.On("GetBank", mock.Anything, uint(3)).Return(stored, nil)
			},
		},
		{
			name: "cache miss loads and caches",
			setup: func(r *MockRepo, c *MockCache) {
				c.On("GetBank", mock.Anything, uint(3)).Return(nil, nil)
				r.On("GetByID", mock.Anything, uint(3)).Return(stored, nil)
				c.On("CacheBank", mock.Anything, stored).Return(nil)
			},
		},
		{
			name: "cache failure falls back to database",
			setup: func(r *MockRepo, c *MockCache) {
				c.On("GetBank", mock.Anything, uint(3)).Return(nil, errors.New("redis down"))
				r.On("GetByID", mock.Anything, uint(3)).Return(stored, nil)
				c.On("CacheBank", mock.Anything, stored).Return(errors.New("redis down"))
			},
		},
		{
			name: "unknown bank",
			setup: func(r *MockRepo, c *MockCache) {
				c.On("GetBank", mock.Anything, uint(3)).Return(nil, nil)
				r.On("GetByID", mock.Anything, uint(3)).Return(nil, repositories.ErrBankNotFound)
			},
			wantErr: apperrors.ErrBankNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, cache := new(MockRepo), new(MockCache)
			tt.setup(repo, cache)

			bank, err := NewService(repo, cache, nil).Get(context.Background(), 3)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, bank)
			} else {
				require.NoError(t, err)
				assert.Equal(t, stored, bank)
			}
			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}

func TestService_GetWithoutCache(t *testing.T) {
	repo := new(MockRepo)
	repo.On("GetByID", mock.Anything, uint(3)).Return(stored, nil)

	bank, err := NewService(repo, nil, nil).Get(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, stored, bank)
}

func TestService_Create(t *testing.T) {
	repo, cache := new(MockRepo), new(MockCache)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Bank")).Return(nil)
	cache.On("InvalidateBank", mock.Anything, uint(42)).Return(nil)

	bank, err := NewService(repo, cache, nil).Create(context.Background(), CreateInput{
		Name:  " Second Bank ",
		UUID:  "a0a0a0a0-b1b1-4c2c-8d3d-e4e4e4e4e4e4",
		Token: "tok",
		URL:   "https://second.example/api/",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(42), bank.ID)
	assert.Equal(t, "Second Bank", bank.Name)
	assert.Equal(t, "a0a0a0a0-b1b1-4c2c-8d3d-e4e4e4e4e4e4", bank.UUID.String())
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestService_CreateInvalid(t *testing.T) {
	repo := new(MockRepo)

	_, err := NewService(repo, nil, nil).Create(context.Background(), CreateInput{Name: "x", UUID: "bad", Token: "t", URL: "http://x"})

	de, ok := apperrors.AsDomain(err)
	require.True(t, ok)
	assert.Equal(t, "INVALID_BANK", de.Code)
	assert.Equal(t, "must be a valid UUID", de.Fields["uuid"])
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateDuplicate(t *testing.T) {
	repo := new(MockRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(repositories.ErrDuplicateBank)

	_, err := NewService(repo, nil, nil).Create(context.Background(), CreateInput{
		Name: "x", UUID: "a0a0a0a0-b1b1-4c2c-8d3d-e4e4e4e4e4e4", Token: "t", URL: "http://x",
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateBank)
}
