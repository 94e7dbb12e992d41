// Package contract defines the request, response and failure types exchanged
// between the service layer and its callers. Business rule violations travel
// as structured Result values; Go errors are reserved for infrastructure.
package contract

// FailureCode classifies an expected negative outcome of an operation.
type FailureCode string

const (
	FailureNotFound       FailureCode = "not_found"
	FailureValidation     FailureCode = "validation"
	FailureConflict       FailureCode = "conflict"
	FailureInfrastructure FailureCode = "infrastructure"
)

// Failure is one rule violation with a user-facing message. Field is empty
// for failures not tied to a single input field.
type Failure struct {
	Code    FailureCode
	Field   string
	Message string
}

// Result collects the failures of one operation. Validators report every
// violated rule independently rather than stopping at the first.
type Result struct {
	Failures []Failure
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool {
	return len(r.Failures) == 0
}

// Add appends a failure.
func (r *Result) Add(code FailureCode, field, message string) {
	r.Failures = append(r.Failures, Failure{Code: code, Field: field, Message: message})
}

// Fail builds a single-failure result.
func Fail(code FailureCode, field, message string) Result {
	return Result{Failures: []Failure{{Code: code, Field: field, Message: message}}}
}
