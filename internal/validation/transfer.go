package validation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Transfer validates a transfer submission before any bank is called.
// Source and destination may be the same account; that is left to the bank.
func (v *Validator) Transfer(sourceBankID, destinationBankID uint, sourceAccount, destinationAccount string, amount decimal.Decimal, info string) {
	v.Required("source_bank", sourceBankID)
	v.Required("destination_bank", destinationBankID)
	v.UUID("source_account_id", sourceAccount)
	v.UUID("destination_account_id", destinationAccount)
	v.Amount("amount", amount)
	v.Required("info", info)
	v.MaxLength("info", info, MaxInfoLength)
}

// Amount checks that value fits numeric(18,2) and is at least MinTransferAmount.
func (v *Validator) Amount(field string, value decimal.Decimal) {
	if value.LessThan(decimal.NewFromInt(MinTransferAmount)) {
		v.AddError(field, fmt.Sprintf("must be greater than or equal to %d", MinTransferAmount))
		return
	}
	if !value.Equal(value.Round(MaxAmountDecimals)) {
		v.AddError(field, fmt.Sprintf("must have no more than %d decimal places", MaxAmountDecimals))
		return
	}
	if digits := len(value.Truncate(0).String()); digits > MaxAmountDigits-MaxAmountDecimals {
		v.AddError(field, fmt.Sprintf("must have no more than %d digits in total", MaxAmountDigits))
	}
}
