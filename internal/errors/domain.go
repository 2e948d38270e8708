// Package errors holds the domain errors returned to API and CLI callers.
package errors

import "errors"

// DomainError is an error with a stable code that handlers translate to a status.
type DomainError struct {
	Code    string
	Message string
	Fields  map[string]string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches on Code so wrapped copies with field details still compare equal
// to the package sentinels.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithFields returns a copy of e carrying field level messages.
func (e *DomainError) WithFields(fields map[string]string) *DomainError {
	return &DomainError{Code: e.Code, Message: e.Message, Fields: fields}
}

// AsDomain unwraps err into a DomainError when it is one.
func AsDomain(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
