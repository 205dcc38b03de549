package rules

import (
	"fmt"

	"github.com/domainkit/domainkit/pkg/result"
)

// Numeric is the constraint shared by all numeric rules.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Min validates that a number is at least min.
func Min[T Numeric](field string, value, min T) result.Validation {
	return result.ValidateValue(func() bool {
		return value >= min
	}, fmt.Sprintf("%s must be at least %v", field, min), value)
}

// Max validates that a number is at most max.
func Max[T Numeric](field string, value, max T) result.Validation {
	return result.ValidateValue(func() bool {
		return value <= max
	}, fmt.Sprintf("%s must be at most %v", field, max), value)
}

// Between validates that a number falls within [min, max].
func Between[T Numeric](field string, value, min, max T) result.Validation {
	return result.ValidateValue(func() bool {
		return value >= min && value <= max
	}, fmt.Sprintf("%s must be between %v and %v", field, min, max), value)
}

// Positive validates that a number is greater than zero.
func Positive[T Numeric](field string, value T) result.Validation {
	return result.ValidateValue(func() bool {
		return value > 0
	}, fmt.Sprintf("%s must be positive", field), value)
}

// NonNegative validates that a number is zero or greater.
func NonNegative[T Numeric](field string, value T) result.Validation {
	return result.ValidateValue(func() bool {
		return value >= 0
	}, fmt.Sprintf("%s must not be negative", field), value)
}
