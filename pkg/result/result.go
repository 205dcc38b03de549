package result

import "fmt"

// Check is a zero-argument predicate evaluated by a Result. Checks are
// assumed side-effect free and may be re-evaluated. Declared as a type alias
// so any func() bool value, including specification.Specification, can be
// passed without conversion.
type Check = func() bool

// Validation pairs a Check with the pre-built Error to record when the
// check fails. Build instances with Validate or ValidateValue.
type Validation struct {
	Check Check
	Error Error
}

// Validate builds a Validation for use with ValidateAll.
func Validate(check Check, message string) Validation {
	return ValidateValue(check, message, nil)
}

// ValidateValue builds a Validation that records the actual value being
// validated alongside the failure message.
func ValidateValue(check Check, message string, actualValue any) Validation {
	return Validation{
		Check: check,
		Error: Error{Message: message, ActualValue: actualValue},
	}
}

// Combinable is the view of a Result needed by Combine. It is satisfied by
// *Result of any value type, so sub-object validations with different
// targets merge into one report.
type Combinable interface {
	HasErrors() bool
	Errors() Errors
}

// Result accumulates the outcome of validating or constructing a value of
// type T. It is a mutable accumulator with single-owner semantics: every
// chain method mutates the receiver and returns it, so a chain reads
// fluently while aliasing stays explicit in the pointer type. A Result is
// not safe for concurrent mutation; validate sub-objects on their own
// Results and merge them with Combine from a single owner.
type Result[T any] struct {
	target         string
	value          T
	hasValue       bool
	errors         Errors
	shortCircuited bool
}

// ResultFor returns an empty Result targeting type T, used when validation
// precedes construction of the value. The value stays absent until
// OnSuccess materializes it.
func ResultFor[T any]() *Result[T] {
	return &Result[T]{target: fmt.Sprintf("%T", *new(T))}
}

// As returns a Result already holding value, with no errors. Get succeeds
// immediately. Typically used to carry an existing sub-object into Combine.
func As[T any](value T) *Result[T] {
	return &Result[T]{
		target:   fmt.Sprintf("%T", value),
		value:    value,
		hasValue: true,
	}
}

// HasErrors reports whether any check has failed so far.
func (r *Result[T]) HasErrors() bool {
	return len(r.errors) > 0
}

// Errors returns the recorded error entries in the order they were added,
// or an empty collection when every check passed.
func (r *Result[T]) Errors() Errors {
	return r.errors
}

// Get returns the held value. It returns ErrNoSuccessValue when no value
// has been materialized, either because OnSuccess was never reached or
// because validation failed and OnSuccess skipped the supplier. Callers are
// expected to check HasErrors before relying on Get.
func (r *Result[T]) Get() (T, error) {
	if !r.hasValue {
		var zero T
		return zero, ErrNoSuccessValue
	}
	return r.value, nil
}

// MustGet returns the held value or panics with ErrNoSuccessValue. Reserved
// for call sites that have already verified HasErrors is false.
func (r *Result[T]) MustGet() T {
	if !r.hasValue {
		panic(ErrNoSuccessValue)
	}
	return r.value
}

// Ensure evaluates a prerequisite check. The first failing Ensure records
// its error and short-circuits the chain: subsequent Ensure and ValidateAll
// calls become no-ops and their checks are never evaluated. Only the first
// prerequisite failure is ever reported.
func (r *Result[T]) Ensure(check Check, message string) *Result[T] {
	return r.EnsureValue(check, message, nil)
}

// EnsureValue is Ensure with the actual value under validation attached to
// the error entry for diagnostic context.
func (r *Result[T]) EnsureValue(check Check, message string, actualValue any) *Result[T] {
	if r.shortCircuited {
		return r
	}
	if !check() {
		r.errors = append(r.errors, Error{Message: message, ActualValue: actualValue})
		r.shortCircuited = true
	}
	return r
}

// ValidateAll evaluates every validation independently, in order, and
// records an error for each one that fails. Unlike Ensure, one failure does
// not stop evaluation of the rest. If a prior Ensure short-circuited the
// chain, none of the checks are evaluated and no errors are added.
func (r *Result[T]) ValidateAll(validations ...Validation) *Result[T] {
	if r.shortCircuited {
		return r
	}
	for _, v := range validations {
		if !v.Check() {
			r.errors = append(r.errors, v.Error)
		}
	}
	return r
}

// Combine merges the already-computed error entries of other Results into
// this one, in the order given. It evaluates nothing, ignores the
// short-circuit state on both sides, and never sets the flag itself:
// sub-results are finished work, not checks to suppress.
func (r *Result[T]) Combine(results ...Combinable) *Result[T] {
	for _, other := range results {
		if other.HasErrors() {
			r.errors = append(r.errors, other.Errors()...)
		}
	}
	return r
}

// OnSuccess invokes supplier and stores its result as the success value,
// but only when no errors have been recorded. With errors present the
// supplier is never invoked. Calling OnSuccess again on an error-free
// Result re-invokes the supplier and overwrites the value.
func (r *Result[T]) OnSuccess(supplier func() T) *Result[T] {
	if r.HasErrors() {
		return r
	}
	r.value = supplier()
	r.hasValue = true
	return r
}

// String renders the Result state for logs. The error entries use their own
// stable rendering.
func (r *Result[T]) String() string {
	return fmt.Sprintf("result{target: %s, hasValue: %t, shortCircuited: %t, errors: %s}",
		r.target, r.hasValue, r.shortCircuited, r.errors)
}
