package errors

var (
	ErrInvalidTransfer = &DomainError{
		Code:    "INVALID_TRANSFER",
		Message: "invalid transfer request",
	}
	ErrTransferNotFound = &DomainError{
		Code:    "TRANSFER_NOT_FOUND",
		Message: "transfer request not found",
	}
)
