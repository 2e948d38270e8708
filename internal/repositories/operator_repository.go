package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bankagent/internal/models"

	"gorm.io/gorm"
)

var (
	ErrOperatorNotFound = errors.New("operator not found")
	ErrEmailTaken       = errors.New("email already taken")
)

// OperatorRepository defines the database operations on back office operators
type OperatorRepository interface {
	Create(ctx context.Context, op *models.Operator) error
	GetByID(ctx context.Context, id uint) (*models.Operator, error)
	GetByEmail(ctx context.Context, email string) (*models.Operator, error)
	TouchLastLogin(ctx context.Context, id uint, at time.Time) error
	IncrementTokenVersion(ctx context.Context, id uint) error
}

type operatorRepository struct {
	db *gorm.DB
}

func NewOperatorRepository(db *gorm.DB) OperatorRepository {
	return &operatorRepository{db: db}
}

func (r *operatorRepository) Create(ctx context.Context, op *models.Operator) error {
	if err := r.db.WithContext(ctx).Create(op).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create operator: %w", err)
	}
	return nil
}

func (r *operatorRepository) GetByID(ctx context.Context, id uint) (*models.Operator, error) {
	var op models.Operator
	if err := r.db.WithContext(ctx).First(&op, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOperatorNotFound
		}
		return nil, fmt.Errorf("failed to get operator: %w", err)
	}
	return &op, nil
}

func (r *operatorRepository) GetByEmail(ctx context.Context, email string) (*models.Operator, error) {
	var op models.Operator
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&op).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOperatorNotFound
		}
		return nil, fmt.Errorf("failed to get operator: %w", err)
	}
	return &op, nil
}

func (r *operatorRepository) TouchLastLogin(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).Model(&models.Operator{}).Where("id = ?", id).Update("last_login_at", at).Error
}

func (r *operatorRepository) IncrementTokenVersion(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&models.Operator{}).
		Where("id = ?", id).
		Update("token_version", gorm.Expr("token_version + 1")).Error
}
