package repositories

import (
	"context"
	"errors"
	"fmt"

	"bankagent/internal/models"

	"gorm.io/gorm"
)

var ErrTransferRequestNotFound = errors.New("transfer request not found")

// TransferRequestRepository stores submitted transfers and their outcomes
type TransferRequestRepository interface {
	Create(ctx context.Context, req *models.TransferRequest) error
	SaveOutcome(ctx context.Context, req *models.TransferRequest) error
	GetByID(ctx context.Context, id uint) (*models.TransferRequest, error)
	// List returns requests newest first with the total count.
	List(ctx context.Context, limit, offset int) ([]models.TransferRequest, int64, error)
}

type transferRequestRepository struct {
	db *gorm.DB
}

func NewTransferRequestRepository(db *gorm.DB) TransferRequestRepository {
	return &transferRequestRepository{db: db}
}

func (r *transferRequestRepository) Create(ctx context.Context, req *models.TransferRequest) error {
	if err := r.db.WithContext(ctx).Omit("SourceBank", "DestinationBank").Create(req).Error; err != nil {
		return fmt.Errorf("failed to create transfer request: %w", err)
	}
	return nil
}

func (r *transferRequestRepository) SaveOutcome(ctx context.Context, req *models.TransferRequest) error {
	result := r.db.WithContext(ctx).
		Model(&models.TransferRequest{}).
		Where("id = ?", req.ID).
		Updates(map[string]interface{}{
			"completed":      req.Completed,
			"service_detail": req.ServiceDetail,
			"legs":           req.Legs,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to save transfer outcome: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransferRequestNotFound
	}
	return nil
}

func (r *transferRequestRepository) GetByID(ctx context.Context, id uint) (*models.TransferRequest, error) {
	var req models.TransferRequest
	if err := r.db.WithContext(ctx).First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransferRequestNotFound
		}
		return nil, fmt.Errorf("failed to get transfer request: %w", err)
	}
	return &req, nil
}

func (r *transferRequestRepository) List(ctx context.Context, limit, offset int) ([]models.TransferRequest, int64, error) {
	var (
		reqs  []models.TransferRequest
		total int64
	)
	db := r.db.WithContext(ctx).Model(&models.TransferRequest{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transfer requests: %w", err)
	}
	if err := db.Order("created_at desc").Order("id desc").Limit(limit).Offset(offset).Find(&reqs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list transfer requests: %w", err)
	}
	return reqs, total, nil
}
