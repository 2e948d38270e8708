package request

import (
	"context"

	"bankagent/internal/models"

	"github.com/shopspring/decimal"
)

// BankLookup loads registered banks.
type BankLookup interface {
	Get(ctx context.Context, id uint) (*models.Bank, error)
}

// SubmitInput is a transfer as entered by an operator.
type SubmitInput struct {
	SourceBankID         uint            `json:"source_bank"`
	SourceAccountID      string          `json:"source_account_id"`
	DestinationBankID    uint            `json:"destination_bank"`
	DestinationAccountID string          `json:"destination_account_id"`
	Amount               decimal.Decimal `json:"amount"`
	Info                 string          `json:"info"`
}

// Service accepts transfer requests, runs them and keeps their history.
type Service interface {
	// Submit stores the request, runs the transfer and stores its outcome. A
	// failed transfer is not an error; inspect Completed and ServiceDetail.
	Submit(ctx context.Context, in SubmitInput) (*models.TransferRequest, error)
	Get(ctx context.Context, id uint) (*models.TransferRequest, error)
	List(ctx context.Context, limit, offset int) ([]models.TransferRequest, int64, error)
}
