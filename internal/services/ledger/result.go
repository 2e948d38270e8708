// Package ledger talks to remote bank ledgers and turns every reply, including
// a failure to reach the bank at all, into a Result.
package ledger

// Status classifies the reply of one remote call.
type Status int

const (
	StatusSuccess Status = iota
	StatusValidationError
	StatusUnavailable
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusValidationError:
		return "validation_error"
	case StatusUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Details shown to the submitter.
const (
	DetailSuccess = "Success"
	// DetailUnavailable is used when the bank answered with an unexpected status.
	DetailUnavailable = "Service is unavailable"
	// DetailConnectionFailed is used when the bank could not be reached.
	DetailConnectionFailed = "Service is unavailable."
	// DetailBadRequest is used for a 400 reply whose body is empty.
	DetailBadRequest = "Bad request"
)

// FieldError holds the messages a bank returned for one request field.
type FieldError struct {
	Field    string
	Messages []string
}

// Result is the outcome of a single remote call.
type Result struct {
	Status Status
	Detail string
	// Fields is set only for StatusValidationError, in the order the bank sent them.
	Fields []FieldError
}

// OK reports whether the call succeeded.
func (r Result) OK() bool {
	return r.Status == StatusSuccess
}

func connectionFailed() Result {
	return Result{Status: StatusUnavailable, Detail: DetailConnectionFailed}
}
