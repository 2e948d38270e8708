package validation

const (
	// Amount limits, matching a numeric(18,2) column
	MinTransferAmount = 1
	MaxAmountDigits   = 18
	MaxAmountDecimals = 2

	// Password requirements
	MinPasswordLength = 8
	MaxPasswordLength = 72

	// String lengths
	MaxInfoLength     = 255
	MaxBankNameLength = 255
	MaxTokenLength    = 255
)
