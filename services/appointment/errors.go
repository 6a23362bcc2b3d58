package appointment

import "fmt"

// Date rejection codes surfaced verbatim to the candidate. Only the
// highest-priority code is ever reported per submission.
const (
	CodeDateNotValid          = "dateNotValid"
	CodeDateInPast            = "dateInPast"
	CodeDateIsToday           = "dateIsToday"
	CodeDateIsTodayOrTomorrow = "dateIsTodayOrTomorrow"
	CodeDateBeyond6Months     = "dateBeyond6Months"
)

// ValidationError is a recoverable input rejection carrying one of the
// date rejection codes.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(code, msg string) error {
	return &ValidationError{Code: code, Message: msg}
}

// FetchError wraps a slot repository failure. Recovered locally by
// rendering an availability-error view, never retried here.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetchError: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// InvariantError marks a programmer error: the flow was entered in a state
// an earlier journey step should have made impossible.
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariantError: %s", e.Message)
}

func NewInvariantError(format string, args ...interface{}) error {
	return &InvariantError{Message: fmt.Sprintf(format, args...)}
}
