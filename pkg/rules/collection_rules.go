package rules

import (
	"fmt"
	"slices"

	"github.com/domainkit/domainkit/pkg/result"
)

// NotEmptySlice validates that a slice has at least one element.
func NotEmptySlice[T any](field string, values []T) result.Validation {
	return result.Validate(func() bool {
		return len(values) > 0
	}, fmt.Sprintf("%s must not be empty", field))
}

// MinItems validates that a slice has at least min elements.
func MinItems[T any](field string, values []T, min int) result.Validation {
	return result.ValidateValue(func() bool {
		return len(values) >= min
	}, fmt.Sprintf("%s must contain at least %d items", field, min), len(values))
}

// MaxItems validates that a slice has at most max elements.
func MaxItems[T any](field string, values []T, max int) result.Validation {
	return result.ValidateValue(func() bool {
		return len(values) <= max
	}, fmt.Sprintf("%s must not contain more than %d items", field, max), len(values))
}

// InList validates that a value is one of the allowed values.
func InList[T comparable](field string, value T, allowed []T) result.Validation {
	return result.ValidateValue(func() bool {
		return slices.Contains(allowed, value)
	}, fmt.Sprintf("%s must be one of: %v", field, allowed), value)
}
