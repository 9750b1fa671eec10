package session

import "fmt"

// FormatError reports a session document that is not well-formed or lacks
// the list_of_function field.
type FormatError struct {
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid session document: %s: %v", e.Reason, e.Err)
	}
	return "invalid session document: " + e.Reason
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
