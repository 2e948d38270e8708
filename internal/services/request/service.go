package request

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "bankagent/internal/errors"
	"bankagent/internal/models"
	"bankagent/internal/repositories"
	"bankagent/internal/services/transfer"
	"bankagent/internal/validation"

	"go.uber.org/zap"
)

type service struct {
	repo      repositories.TransferRequestRepository
	banks     BankLookup
	transfers transfer.Service
	log       *zap.Logger
}

// NewService creates a request service.
func NewService(repo repositories.TransferRequestRepository, banks BankLookup, transfers transfer.Service, log *zap.Logger) Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{
		repo:      repo,
		banks:     banks,
		transfers: transfers,
		log:       log,
	}
}

func (s *service) Submit(ctx context.Context, in SubmitInput) (*models.TransferRequest, error) {
	in.SourceAccountID = strings.TrimSpace(in.SourceAccountID)
	in.DestinationAccountID = strings.TrimSpace(in.DestinationAccountID)

	v := validation.New()
	v.Transfer(in.SourceBankID, in.DestinationBankID, in.SourceAccountID, in.DestinationAccountID, in.Amount, in.Info)
	if !v.Valid() {
		return nil, apperrors.ErrInvalidTransfer.WithFields(v.Errors)
	}

	source, err := s.bank(ctx, "source_bank", in.SourceBankID)
	if err != nil {
		return nil, err
	}
	destination, err := s.bank(ctx, "destination_bank", in.DestinationBankID)
	if err != nil {
		return nil, err
	}

	req := &models.TransferRequest{
		SourceBankID:         source.ID,
		SourceAccountID:      in.SourceAccountID,
		DestinationBankID:    destination.ID,
		DestinationAccountID: in.DestinationAccountID,
		Amount:               in.Amount,
		Info:                 in.Info,
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}

	outcome := s.transfers.Run(ctx, transfer.Intent{
		Source:             *source,
		SourceAccount:      in.SourceAccountID,
		Destination:        *destination,
		DestinationAccount: in.DestinationAccountID,
		Amount:             in.Amount,
		Info:               in.Info,
	})
	req.RecordOutcome(outcome.Completed(), outcome.Detail, outcome.Trail())

	// Money may already have moved; the request stays pending in storage but the
	// caller still gets the outcome.
	if err := s.repo.SaveOutcome(ctx, req); err != nil {
		s.log.Error("failed to save transfer outcome",
			zap.Uint("transfer_request_id", req.ID),
			zap.Bool("completed", req.Completed),
			zap.String("detail", outcome.Detail),
			zap.Error(err),
		)
		return req, fmt.Errorf("transfer %d ran but its outcome was not saved: %w", req.ID, err)
	}

	return req, nil
}

func (s *service) Get(ctx context.Context, id uint) (*models.TransferRequest, error) {
	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransferRequestNotFound) {
			return nil, apperrors.ErrTransferNotFound
		}
		return nil, err
	}
	return req, nil
}

func (s *service) List(ctx context.Context, limit, offset int) ([]models.TransferRequest, int64, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *service) bank(ctx context.Context, field string, id uint) (*models.Bank, error) {
	bank, err := s.banks.Get(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrBankNotFound) {
			return nil, apperrors.ErrBankNotFound.WithFields(map[string]string{field: "unknown bank"})
		}
		return nil, err
	}
	return bank, nil
}
