package repositories

import (
	"context"
	"errors"
	"fmt"

	"bankagent/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBankNotFound  = errors.New("bank not found")
	ErrDuplicateBank = errors.New("bank already exists")
)

// BankRepository defines the database operations on registered banks
type BankRepository interface {
	Create(ctx context.Context, bank *models.Bank) error
	GetByID(ctx context.Context, id uint) (*models.Bank, error)
	GetByUUID(ctx context.Context, id uuid.UUID) (*models.Bank, error)
	List(ctx context.Context) ([]models.Bank, error)
}

type bankRepository struct {
	db *gorm.DB
}

func NewBankRepository(db *gorm.DB) BankRepository {
	return &bankRepository{db: db}
}

func (r *bankRepository) Create(ctx context.Context, bank *models.Bank) error {
	if err := r.db.WithContext(ctx).Create(bank).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateBank
		}
		return fmt.Errorf("failed to create bank: %w", err)
	}
	return nil
}

func (r *bankRepository) GetByID(ctx context.Context, id uint) (*models.Bank, error) {
	var bank models.Bank
	if err := r.db.WithContext(ctx).First(&bank, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBankNotFound
		}
		return nil, fmt.Errorf("failed to get bank: %w", err)
	}
	return &bank, nil
}

func (r *bankRepository) GetByUUID(ctx context.Context, id uuid.UUID) (*models.Bank, error) {
	var bank models.Bank
	if err := r.db.WithContext(ctx).Where("uuid = ?", id).First(&bank).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBankNotFound
		}
		return nil, fmt.Errorf("failed to get bank: %w", err)
	}
	return &bank, nil
}

func (r *bankRepository) List(ctx context.Context) ([]models.Bank, error) {
	var banks []models.Bank
	if err := r.db.WithContext(ctx).Order("name asc").Find(&banks).Error; err != nil {
		return nil, fmt.Errorf("failed to list banks: %w", err)
	}
	return banks, nil
}
