package transfer

import (
	"bankagent/internal/models"
	"bankagent/internal/services/ledger"

	"github.com/shopspring/decimal"
)

// Intent is a validated request to move Amount from one account to another.
type Intent struct {
	Source             models.Bank
	SourceAccount      string
	Destination        models.Bank
	DestinationAccount string
	Amount             decimal.Decimal
	Info               string
}

// Status is the terminal state of a transfer.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Leg names
const (
	LegTransfer = "transfer"
	LegRetire   = "retire"
	LegAdd      = "add"
	LegReverse  = "reverse"
)

// Leg records one remote call made during a run.
type Leg struct {
	Name   string
	Bank   string
	Status ledger.Status
	Detail string
}

// Outcome is the single result of running an Intent. Detail is what the
// submitter sees; Legs is an audit trail and never changes Detail.
type Outcome struct {
	Status Status
	Detail string
	Legs   []Leg
}

// Completed reports whether the money reached the destination.
func (o Outcome) Completed() bool {
	return o.Status == StatusCompleted
}

// Reversed reports whether a compensating credit was attempted.
func (o Outcome) Reversed() bool {
	for _, l := range o.Legs {
		if l.Name == LegReverse {
			return true
		}
	}
	return false
}

// Trail converts the legs into their stored form.
func (o Outcome) Trail() models.LegTrail {
	trail := make(models.LegTrail, 0, len(o.Legs))
	for _, l := range o.Legs {
		trail = append(trail, models.LegRecord{
			Name:   l.Name,
			Bank:   l.Bank,
			Status: l.Status.String(),
			Detail: l.Detail,
		})
	}
	return trail
}

func leg(name string, bank models.Bank, res ledger.Result) Leg {
	return Leg{Name: name, Bank: bank.UUID.String(), Status: res.Status, Detail: res.Detail}
}
