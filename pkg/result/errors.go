package result

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoSuccessValue is returned by Get (and raised by MustGet) when the
// Result holds no success value. It signals caller misuse, not a domain
// validation failure; validation failures are reported as Errors data.
var ErrNoSuccessValue = errors.New("result has no success value")

// Error is a single validation failure: a human-readable message plus the
// optional actual value that failed the check, kept for diagnostic context.
type Error struct {
	Message     string `json:"message"`
	ActualValue any    `json:"actual_value,omitempty"`
}

// String renders the entry in a stable structured form suitable for logs
// and API responses.
func (e Error) String() string {
	if e.ActualValue == nil {
		return fmt.Sprintf("{message: %q}", e.Message)
	}
	return fmt.Sprintf("{message: %q, actual_value: %v}", e.Message, e.ActualValue)
}

// Errors is an ordered collection of validation failures. It implements the
// error interface so a Result's error list can travel through ordinary
// error returns.
type Errors []Error

// Error implements the error interface.
func (es Errors) Error() string {
	if len(es) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(es))
	for _, e := range es {
		parts = append(parts, e.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// IsEmpty reports whether no failures were recorded.
func (es Errors) IsEmpty() bool {
	return len(es) == 0
}

// Messages returns just the failure messages, in order.
func (es Errors) Messages() []string {
	if len(es) == 0 {
		return nil
	}

	messages := make([]string, 0, len(es))
	for _, e := range es {
		messages = append(messages, e.Message)
	}
	return messages
}

// String renders the collection for logs.
func (es Errors) String() string {
	if len(es) == 0 {
		return "[]"
	}

	parts := make([]string, 0, len(es))
	for _, e := range es {
		parts = append(parts, e.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
