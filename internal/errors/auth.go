package errors

var (
	ErrInvalidCredentials = &DomainError{
		Code:    "INVALID_CREDENTIALS",
		Message: "invalid credentials",
	}
	ErrSessionExpired = &DomainError{
		Code:    "SESSION_EXPIRED",
		Message: "session expired",
	}
)
