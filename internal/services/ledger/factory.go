package ledger

import (
	"net/http"
	"sync"

	"bankagent/internal/config"
	"bankagent/internal/models"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// Factory builds clients for banks. Clients are cheap and built per transfer
// from the bank record loaded for it; the circuit breaker of a bank outlives
// them so repeated failures are remembered across transfers.
type Factory struct {
	http *http.Client
	cfg  config.LedgerConfig
	log  *zap.Logger

	mu       sync.Mutex
	breakers map[uuid.UUID]*gobreaker.CircuitBreaker
}

// NewFactory creates a Factory. A BreakerMaxFailures of zero disables breakers.
func NewFactory(cfg config.LedgerConfig, log *zap.Logger) *Factory {
	if log == nil {
		log = zap.NewNop()
	}
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Factory{
		http:     &http.Client{Timeout: timeout},
		cfg:      cfg,
		log:      log,
		breakers: make(map[uuid.UUID]*gobreaker.CircuitBreaker),
	}
}

// ClientFor returns a client bound to bank.
func (f *Factory) ClientFor(bank models.Bank) *Client {
	opts := []Option{WithHTTPClient(f.http), WithLogger(f.log)}
	if cb := f.breakerFor(bank); cb != nil {
		opts = append(opts, WithBreaker(cb))
	}
	return NewClient(bank, opts...)
}

func (f *Factory) breakerFor(bank models.Bank) *gobreaker.CircuitBreaker {
	if f.cfg.BreakerMaxFailures <= 0 {
		return nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if cb, ok := f.breakers[bank.UUID]; ok {
		return cb
	}

	maxFailures := uint32(f.cfg.BreakerMaxFailures)
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        bank.UUID.String(),
		MaxRequests: 1,
		Timeout:     f.cfg.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			f.log.Warn("ledger circuit breaker state changed",
				zap.String("bank_uuid", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	f.breakers[bank.UUID] = cb
	return cb
}
