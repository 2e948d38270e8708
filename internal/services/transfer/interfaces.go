package transfer

import (
	"context"

	"bankagent/internal/models"
	"bankagent/internal/services/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerClient defines the remote bank operations used by the transfer service.
type LedgerClient interface {
	Transfer(ctx context.Context, source, destination, info string, amount decimal.Decimal) ledger.Result
	RetireFund(ctx context.Context, source string, dstBank uuid.UUID, info string, amount decimal.Decimal) ledger.Result
	AddFund(ctx context.Context, destination string, srcBank uuid.UUID, info string, amount decimal.Decimal) ledger.Result
}

// ClientFactory hands out a client bound to a bank.
type ClientFactory interface {
	ClientFor(bank models.Bank) LedgerClient
}

// FactoryFunc adapts a function to ClientFactory.
type FactoryFunc func(bank models.Bank) LedgerClient

// ClientFor calls f(bank).
func (f FactoryFunc) ClientFor(bank models.Bank) LedgerClient {
	return f(bank)
}

// LedgerFactory adapts a *ledger.Factory to ClientFactory.
func LedgerFactory(f *ledger.Factory) ClientFactory {
	return FactoryFunc(func(bank models.Bank) LedgerClient {
		return f.ClientFor(bank)
	})
}

// Service runs transfers between bank accounts.
type Service interface {
	Run(ctx context.Context, intent Intent) Outcome
}
