package transfer

import (
	"context"
	"testing"

	"bankagent/internal/models"
	"bankagent/internal/services/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockLedgerClient struct {
	mock.Mock
}

func (m *MockLedgerClient) Transfer(ctx context.Context, source, destination, info string, amount decimal.Decimal) ledger.Result {
	args := m.Called(ctx, source, destination, info, amount)
	return args.Get(0).(ledger.Result)
}

func (m *MockLedgerClient) RetireFund(ctx context.Context, source string, dstBank uuid.UUID, info string, amount decimal.Decimal) ledger.Result {
	args := m.Called(ctx, source, dstBank, info, amount)
	return args.Get(0).(ledger.Result)
}

func (m *MockLedgerClient) AddFund(ctx context.Context, destination string, srcBank uuid.UUID, info string, amount decimal.Decimal) ledger.Result {
	args := m.Called(ctx, destination, srcBank, info, amount)
	return args.Get(0).(ledger.Result)
}

const (
	sourceAccount      = "8bce8de8-4856-4113-aff7-0812a5c6ea29"
	destinationAccount = "bbbadca3-2fdb-4036-ae04-c23dca10c93c"
	info               = "test info"
)

var (
	bankA = models.Bank{ID: 1, Name: "A", UUID: uuid.MustParse("11111111-1111-4111-8111-111111111111"), Token: "ta", URL: "http://a/"}
	bankB = models.Bank{ID: 2, Name: "B", UUID: uuid.MustParse("22222222-2222-4222-8222-222222222222"), Token: "tb", URL: "http://b/"}

	amount = decimal.NewFromInt(10)

	success     = ledger.Result{Status: ledger.StatusSuccess, Detail: "Success"}
	noFunds     = ledger.Result{Status: ledger.StatusValidationError, Detail: "source: Account does not have enough fund"}
	noAccount   = ledger.Result{Status: ledger.StatusValidationError, Detail: "destination: Object with uuid=bbbadca3-2fdb-4036-ae04-c23dca10c93c does not exist."}
	unreachable = ledger.Result{Status: ledger.StatusUnavailable, Detail: "Service is unavailable."}
)

// clients returns a factory handing out one mock per bank.
func clients(byBank map[uuid.UUID]*MockLedgerClient) ClientFactory {
	return FactoryFunc(func(bank models.Bank) LedgerClient {
		return byBank[bank.UUID]
	})
}

func interIntent() Intent {
	return Intent{
		Source:             bankA,
		SourceAccount:      sourceAccount,
		Destination:        bankB,
		DestinationAccount: destinationAccount,
		Amount:             amount,
		Info:               info,
	}
}

func TestService_IntraLedger(t *testing.T) {
	tests := []struct {
		name       string
		result     ledger.Result
		wantStatus Status
	}{
		{name: "success", result: success, wantStatus: StatusCompleted},
		{name: "rejected", result: noFunds, wantStatus: StatusFailed},
		{name: "unreachable", result: unreachable, wantStatus: StatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(MockLedgerClient)
			client.On("Transfer", mock.Anything, sourceAccount, destinationAccount, info, amount).Return(tt.result).Once()

			svc := NewService(clients(map[uuid.UUID]*MockLedgerClient{bankA.UUID: client}), nil)
			out := svc.Run(context.Background(), Intent{
				Source:             bankA,
				SourceAccount:      sourceAccount,
				Destination:        bankA,
				DestinationAccount: destinationAccount,
				Amount:             amount,
				Info:               info,
			})

			assert.Equal(t, tt.wantStatus, out.Status)
			assert.Equal(t, tt.result.Detail, out.Detail)
			assert.Equal(t, tt.wantStatus == StatusCompleted, out.Completed())
			client.AssertExpectations(t)
			client.AssertNotCalled(t, "RetireFund", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			client.AssertNotCalled(t, "AddFund", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestService_IntraLedgerSameAccount(t *testing.T) {
	client := new(MockLedgerClient)
	client.On("Transfer", mock.Anything, sourceAccount, sourceAccount, info, amount).Return(success).Once()

	svc := NewService(clients(map[uuid.UUID]*MockLedgerClient{bankA.UUID: client}), nil)
	out := svc.Run(context.Background(), Intent{
		Source: bankA, SourceAccount: sourceAccount,
		Destination: bankA, DestinationAccount: sourceAccount,
		Amount: amount, Info: info,
	})

	assert.True(t, out.Completed())
	client.AssertExpectations(t)
}

func TestService_InterLedgerSuccess(t *testing.T) {
	source, destination := new(MockLedgerClient), new(MockLedgerClient)
	source.On("RetireFund", mock.Anything, sourceAccount, bankB.UUID, info, amount).Return(success).Once()
	destination.On("AddFund", mock.Anything, destinationAccount, bankA.UUID, info, amount).Return(success).Once()

	svc := NewService(clients(map[uuid.UUID]*MockLedgerClient{bankA.UUID: source, bankB.UUID: destination}), nil)
	out := svc.Run(context.Background(), interIntent())

	assert.Equal(t, Outcome{
		Status: StatusCompleted,
		Detail: "Success",
		Legs: []Leg{
			{Name: LegRetire, Bank: bankA.UUID.String(), Status: ledger.StatusSuccess, Detail: "Success"},
			{Name: LegAdd, Bank: bankB.UUID.String(), Status: ledger.StatusSuccess, Detail: "Success"},
		},
	}, out)
	assert.False(t, out.Reversed())
	source.AssertExpectations(t)
	destination.AssertExpectations(t)
	source.AssertNotCalled(t, "AddFund", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	destination.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_InterLedgerRetireFails(t *testing.T) {
	for _, result := range []ledger.Result{noFunds, unreachable} {
		t.Run(result.Status.String(), func(t *testing.T) {
			source, destination := new(MockLedgerClient), new(MockLedgerClient)
			source.On("RetireFund", mock.Anything, sourceAccount, bankB.UUID, info, amount).Return(result).Once()

			svc := NewService(clients(map[uuid.UUID]*MockLedgerClient{bankA.UUID: source, bankB.UUID: destination}), nil)
			out := svc.Run(context.Background(), interIntent())

			assert.Equal(t, StatusFailed, out.Status)
			assert.Equal(t, result.Detail, out.Detail)
			assert.Len(t, out.Legs, 1)
			source.AssertExpectations(t)
			source.AssertNotCalled(t, "AddFund", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			destination.AssertNotCalled(t, "AddFund", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestService_InterLedgerAddFailsIsReversed(t *testing.T) {
	tests := []struct {
		name    string
		added   ledger.Result
		reverse ledger.Result
	}{
		{name: "destination rejects, reversal succeeds", added: noAccount, reverse: success},
		{name: "destination rejects, reversal fails", added: noAccount, reverse: unreachable},
		{name: "destination unreachable, reversal rejected", added: unreachable, reverse: noFunds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, destination := new(MockLedgerClient), new(MockLedgerClient)
			source.On("RetireFund", mock.Anything, sourceAccount, bankB.UUID, info, amount).Return(success).Once()
			destination.On("AddFund", mock.Anything, destinationAccount, bankA.UUID, info, amount).Return(tt.added).Once()
			// The compensating credit goes back to the source account on the source bank.
			source.On("AddFund", mock.Anything, sourceAccount, bankB.UUID, info, amount).Return(tt.reverse).Once()

			svc := NewService(clients(map[uuid.UUID]*MockLedgerClient{bankA.UUID: source, bankB.UUID: destination}), nil)
			out := svc.Run(context.Background(), interIntent())

			assert.Equal(t, StatusFailed, out.Status)
			assert.False(t, out.Completed())
			assert.Equal(t, tt.added.Detail, out.Detail)
			assert.True(t, out.Reversed())
			assert.Equal(t, []string{LegRetire, LegAdd, LegReverse}, legNames(out))
			assert.Equal(t, tt.reverse.Status, out.Legs[2].Status)
			source.AssertExpectations(t)
			destination.AssertExpectations(t)
		})
	}
}

func TestService_ScenarioDestinationRejects(t *testing.T) {
	source, destination := new(MockLedgerClient), new(MockLedgerClient)
	source.On("RetireFund", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(success)
	destination.On("AddFund", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(noAccount)
	source.On("AddFund", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(success)

	svc := NewService(clients(map[uuid.UUID]*MockLedgerClient{bankA.UUID: source, bankB.UUID: destination}), nil)
	out := svc.Run(context.Background(), interIntent())

	assert.Equal(t, StatusFailed, out.Status)
	assert.Equal(t, "destination: Object with uuid=bbbadca3-2fdb-4036-ae04-c23dca10c93c does not exist.", out.Detail)
	source.AssertNumberOfCalls(t, "RetireFund", 1)
	source.AssertNumberOfCalls(t, "AddFund", 1)
	destination.AssertNumberOfCalls(t, "AddFund", 1)
}

func TestOutcome_Trail(t *testing.T) {
	out := Outcome{Legs: []Leg{{Name: LegRetire, Bank: "b", Status: ledger.StatusUnavailable, Detail: "Service is unavailable."}}}

	assert.Equal(t, models.LegTrail{
		{Name: "retire", Bank: "b", Status: "unavailable", Detail: "Service is unavailable."},
	}, out.Trail())
}

func legNames(out Outcome) []string {
	names := make([]string, 0, len(out.Legs))
	for _, l := range out.Legs {
		names = append(names, l.Name)
	}
	return names
}
