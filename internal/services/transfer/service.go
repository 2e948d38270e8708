package transfer

import (
	"context"

	"bankagent/internal/services/ledger"

	"go.uber.org/zap"
)

// service implements the transfer Service interface.
type service struct {
	clients ClientFactory
	log     *zap.Logger
}

// NewService creates a new transfer service instance.
func NewService(clients ClientFactory, log *zap.Logger) Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{
		clients: clients,
		log:     log,
	}
}

// Run executes intent and returns its outcome. Legs run one after another and
// each is attempted once. Nothing is persisted between legs, so a crash after a
// successful retire leaves the source debited with no record of it.
func (s *service) Run(ctx context.Context, intent Intent) Outcome {
	log := s.log.With(
		zap.String("source_bank", intent.Source.UUID.String()),
		zap.String("source_account", intent.SourceAccount),
		zap.String("destination_bank", intent.Destination.UUID.String()),
		zap.String("destination_account", intent.DestinationAccount),
		zap.String("amount", intent.Amount.StringFixed(2)),
	)

	var out Outcome
	if intent.Source.SameLedger(intent.Destination) {
		out = s.intraLedger(ctx, intent)
	} else {
		out = s.interLedger(ctx, intent, log)
	}

	log.Info("transfer finished",
		zap.String("status", string(out.Status)),
		zap.String("detail", out.Detail),
		zap.Bool("reversed", out.Reversed()),
	)
	return out
}

// intraLedger moves the money with a single call on the shared bank.
func (s *service) intraLedger(ctx context.Context, intent Intent) Outcome {
	res := s.clients.ClientFor(intent.Source).Transfer(ctx, intent.SourceAccount, intent.DestinationAccount, intent.Info, intent.Amount)

	return finish(res, []Leg{leg(LegTransfer, intent.Source, res)})
}

// interLedger retires from the source bank, adds on the destination bank and,
// when the add fails, credits the source account back on the source bank.
func (s *service) interLedger(ctx context.Context, intent Intent, log *zap.Logger) Outcome {
	source := s.clients.ClientFor(intent.Source)

	retired := source.RetireFund(ctx, intent.SourceAccount, intent.Destination.UUID, intent.Info, intent.Amount)
	legs := []Leg{leg(LegRetire, intent.Source, retired)}
	if !retired.OK() {
		return finish(retired, legs)
	}

	added := s.clients.ClientFor(intent.Destination).AddFund(ctx, intent.DestinationAccount, intent.Source.UUID, intent.Info, intent.Amount)
	legs = append(legs, leg(LegAdd, intent.Destination, added))
	if added.OK() {
		return finish(added, legs)
	}

	// The reversal result never replaces the add failure shown to the submitter.
	reversed := source.AddFund(ctx, intent.SourceAccount, intent.Destination.UUID, intent.Info, intent.Amount)
	legs = append(legs, leg(LegReverse, intent.Source, reversed))
	if !reversed.OK() {
		log.Error("reversal failed, source account remains debited",
			zap.String("add_detail", added.Detail),
			zap.String("reverse_detail", reversed.Detail),
		)
	} else {
		log.Warn("destination rejected credit, source account reversed", zap.String("add_detail", added.Detail))
	}

	return Outcome{Status: StatusFailed, Detail: added.Detail, Legs: legs}
}

func finish(res ledger.Result, legs []Leg) Outcome {
	switch res.Status {
	case ledger.StatusSuccess:
		return Outcome{Status: StatusCompleted, Detail: res.Detail, Legs: legs}
	default:
		return Outcome{Status: StatusFailed, Detail: res.Detail, Legs: legs}
	}
}
