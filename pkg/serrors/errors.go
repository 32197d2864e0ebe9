package serrors

import "fmt"

// Base is a structured error carrying a stable machine-readable code next to
// the human-readable message. Codes are uppercase snake case, prefixed with
// the owning subsystem (e.g. HIERARCHY_, SWITCH_).
type Base struct {
	Code    string
	Message string
	Details string
}

func NewError(code, message, details string) *Base {
	return &Base{Code: code, Message: message, Details: details}
}

func (e *Base) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WithDetails returns a copy of the error with the details replaced. The
// original remains usable as an errors.Is target.
func (e *Base) WithDetails(details string) *Base {
	return &Base{Code: e.Code, Message: e.Message, Details: details}
}

// Is matches on code so wrapped copies produced by WithDetails still compare
// equal to the sentinel.
func (e *Base) Is(target error) bool {
	t, ok := target.(*Base)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
