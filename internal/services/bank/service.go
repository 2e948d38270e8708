package bank

import (
	"context"
	"errors"
	"strings"

	apperrors "bankagent/internal/errors"
	"bankagent/internal/models"
	"bankagent/internal/repositories"
	"bankagent/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type service struct {
	repo  repositories.BankRepository
	cache Cache
	log   *zap.Logger
}

// NewService creates a bank service. cache may be nil.
func NewService(repo repositories.BankRepository, cache Cache, log *zap.Logger) Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{repo: repo, cache: cache, log: log}
}

func (s *service) Create(ctx context.Context, in CreateInput) (*models.Bank, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.URL = strings.TrimSpace(in.URL)

	v := validation.New()
	v.Bank(in.Name, in.UUID, in.Token, in.URL)
	if !v.Valid() {
		return nil, apperrors.ErrInvalidBank.WithFields(v.Errors)
	}

	bank := &models.Bank{
		Name:  in.Name,
		UUID:  uuid.MustParse(in.UUID),
		Token: in.Token,
		URL:   in.URL,
	}
	if err := s.repo.Create(ctx, bank); err != nil {
		if errors.Is(err, repositories.ErrDuplicateBank) {
			return nil, apperrors.ErrDuplicateBank
		}
		return nil, err
	}

	s.invalidate(ctx, bank.ID)
	s.log.Info("bank registered", zap.Uint("bank_id", bank.ID), zap.String("bank_uuid", bank.UUID.String()))
	return bank, nil
}

// Get loads a bank by id, reading through the cache. Cache errors fall back to
// the database.
func (s *service) Get(ctx context.Context, id uint) (*models.Bank, error) {
	if s.cache != nil {
		cached, err := s.cache.GetBank(ctx, id)
		if err != nil {
			s.log.Warn("bank cache read failed", zap.Uint("bank_id", id), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	bank, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrBankNotFound) {
			return nil, apperrors.ErrBankNotFound
		}
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.CacheBank(ctx, bank); err != nil {
			s.log.Warn("bank cache write failed", zap.Uint("bank_id", id), zap.Error(err))
		}
	}
	return bank, nil
}

func (s *service) GetByUUID(ctx context.Context, id uuid.UUID) (*models.Bank, error) {
	bank, err := s.repo.GetByUUID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrBankNotFound) {
			return nil, apperrors.ErrBankNotFound
		}
		return nil, err
	}
	return bank, nil
}

func (s *service) List(ctx context.Context) ([]models.Bank, error) {
	return s.repo.List(ctx)
}

func (s *service) invalidate(ctx context.Context, id uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateBank(ctx, id); err != nil {
		s.log.Warn("bank cache invalidation failed", zap.Uint("bank_id", id), zap.Error(err))
	}
}
