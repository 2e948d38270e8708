package errors

var (
	ErrBankNotFound = &DomainError{
		Code:    "BANK_NOT_FOUND",
		Message: "bank not found",
	}
	ErrInvalidBank = &DomainError{
		Code:    "INVALID_BANK",
		Message: "invalid bank",
	}
	ErrDuplicateBank = &DomainError{
		Code:    "DUPLICATE_BANK",
		Message: "bank with this uuid already exists",
	}
)
