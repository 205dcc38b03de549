package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/domainkit/domainkit/pkg/result"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) result.Validation {
	return result.ValidateValue(func() bool {
		return strings.TrimSpace(value) != ""
	}, fmt.Sprintf("%s is required", field), value)
}

// MinLen validates that a string has at least min bytes.
func MinLen(field, value string, min int) result.Validation {
	return result.ValidateValue(func() bool {
		return len(value) >= min
	}, fmt.Sprintf("%s must be at least %d characters long", field, min), value)
}

// MaxLen validates that a string has at most max bytes.
func MaxLen(field, value string, max int) result.Validation {
	return result.ValidateValue(func() bool {
		return len(value) <= max
	}, fmt.Sprintf("%s must be at most %d characters long", field, max), value)
}

// LenBetween validates that a string length falls within [min, max].
func LenBetween(field, value string, min, max int) result.Validation {
	return result.ValidateValue(func() bool {
		return len(value) >= min && len(value) <= max
	}, fmt.Sprintf("%s must be between %d and %d characters long", field, min, max), value)
}

// Matches validates that a string matches the given pattern. The pattern is
// compiled by the caller so an invalid expression fails loudly at
// construction instead of silently inside a check.
func Matches(field, value string, pattern *regexp.Regexp) result.Validation {
	return result.ValidateValue(func() bool {
		return pattern.MatchString(value)
	}, fmt.Sprintf("%s has an invalid format", field), value)
}
