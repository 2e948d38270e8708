package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransferRequest is the stored record of one submitted transfer and its outcome.
type TransferRequest struct {
	ID                   uint            `gorm:"primarykey" json:"id"`
	SourceBankID         uint            `gorm:"not null;index" json:"source_bank_id"`
	SourceBank           Bank            `gorm:"foreignKey:SourceBankID;constraint:OnDelete:CASCADE" json:"-"`
	SourceAccountID      string          `gorm:"type:uuid;not null" json:"source_account_id"`
	DestinationBankID    uint            `gorm:"not null;index" json:"destination_bank_id"`
	DestinationBank      Bank            `gorm:"foreignKey:DestinationBankID;constraint:OnDelete:CASCADE" json:"-"`
	DestinationAccountID string          `gorm:"type:uuid;not null" json:"destination_account_id"`
	Amount               decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"amount"`
	Info                 string          `gorm:"size:255;not null" json:"info"`
	ServiceDetail        *string         `gorm:"type:text" json:"service_detail"`
	Completed            bool            `gorm:"not null;default:false" json:"completed"`
	Legs                 LegTrail        `gorm:"type:jsonb" json:"legs"`
	CreatedAt            time.Time       `gorm:"index" json:"created"`
}

func (t TransferRequest) String() string {
	return fmt.Sprintf("Transfer of %s from %s to %s", t.Amount.StringFixed(2), t.SourceAccountID, t.DestinationAccountID)
}

// RecordOutcome stores the terminal result of running the transfer.
func (t *TransferRequest) RecordOutcome(completed bool, detail string, legs LegTrail) {
	t.Completed = completed
	t.ServiceDetail = &detail
	t.Legs = legs
}
