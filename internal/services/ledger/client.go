package ledger

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bankagent/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// maxResponseBytes caps how much of a bank reply is read.
const maxResponseBytes = 1 << 20

const defaultTimeout = 30 * time.Second

var errUnavailable = errors.New("ledger unavailable")

// Client calls one bank. It never returns a Go error: every failure,
// including an unreachable bank, comes back as a Result.
type Client struct {
	bank    models.Bank
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	log     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithBreaker guards every call with cb. Unavailable results count as failures.
func WithBreaker(cb *gobreaker.CircuitBreaker) Option {
	return func(c *Client) { c.breaker = cb }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient binds a client to bank.
func NewClient(bank models.Bank, opts ...Option) *Client {
	c := &Client{
		bank: bank,
		http: &http.Client{Timeout: defaultTimeout},
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	c.log = c.log.With(zap.String("bank", bank.Name), zap.String("bank_uuid", bank.UUID.String()))
	return c
}

// Bank returns the bank this client is bound to.
func (c *Client) Bank() models.Bank {
	return c.bank
}

// Transfer moves amount between two accounts of this bank.
func (c *Client) Transfer(ctx context.Context, source, destination, info string, amount decimal.Decimal) Result {
	form := url.Values{}
	form.Set("source", source)
	form.Set("destination", destination)
	form.Set("info", info)
	form.Set("amount", formatAmount(amount))
	return c.put(ctx, "transfer", c.endpoint("transfer"), form)
}

// RetireFund debits source on this bank; dstBank names the ledger the money goes to.
func (c *Client) RetireFund(ctx context.Context, source string, dstBank uuid.UUID, info string, amount decimal.Decimal) Result {
	form := url.Values{}
	form.Set("dst_bank", dstBank.String())
	form.Set("info", info)
	form.Set("amount", formatAmount(amount))
	return c.put(ctx, "retire", c.endpoint(source, "retire"), form)
}

// AddFund credits destination on this bank; srcBank names the ledger the money comes from.
func (c *Client) AddFund(ctx context.Context, destination string, srcBank uuid.UUID, info string, amount decimal.Decimal) Result {
	form := url.Values{}
	form.Set("src_bank", srcBank.String())
	form.Set("info", info)
	form.Set("amount", formatAmount(amount))
	return c.put(ctx, "add", c.endpoint(destination, "add"), form)
}

func (c *Client) put(ctx context.Context, op, endpoint string, form url.Values) Result {
	if c.breaker == nil {
		return c.send(ctx, op, endpoint, form)
	}

	out, err := c.breaker.Execute(func() (interface{}, error) {
		res := c.send(ctx, op, endpoint, form)
		if res.Status == StatusUnavailable {
			return res, errUnavailable
		}
		return res, nil
	})
	if res, ok := out.(Result); ok {
		return res
	}
	// Open or half-open breaker rejected the call before it was sent.
	c.log.Warn("ledger call rejected by circuit breaker",
		zap.String("operation", op),
		zap.String("state", c.breaker.State().String()),
		zap.Error(err),
	)
	return connectionFailed()
}

func (c *Client) send(ctx context.Context, op, endpoint string, form url.Values) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		c.log.Error("failed to build ledger request", zap.String("operation", op), zap.Error(err))
		return connectionFailed()
	}
	req.Header.Set("Authorization", "Token "+c.bank.Token)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("ledger unreachable", zap.String("operation", op), zap.Error(err))
		return connectionFailed()
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.log.Warn("failed to read ledger response", zap.String("operation", op), zap.Error(err))
		return connectionFailed()
	}

	res := Interpret(resp.StatusCode, body)
	c.log.Debug("ledger call finished",
		zap.String("operation", op),
		zap.Int("status_code", resp.StatusCode),
		zap.Stringer("result", res.Status),
		zap.Duration("latency", time.Since(start)),
	)
	return res
}

// endpoint joins path segments onto the bank's base URL with a trailing slash.
func (c *Client) endpoint(segments ...string) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(c.bank.URL, "/"))
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	b.WriteByte('/')
	return b.String()
}

func formatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
