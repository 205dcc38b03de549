// Package result provides a composable validation container for building
// domain entities and value objects while consolidating every validation
// failure into a single structured report, instead of stopping at the first
// broken rule.
//
// A Result is created either empty, targeting a type that does not exist
// yet (ResultFor), or wrapping an already-constructed value (As). The
// caller then chains prerequisite checks (Ensure), an exhaustive batch of
// independent checks (ValidateAll), merges reports from sub-object
// validations (Combine), and finally materializes the success value
// (OnSuccess) if nothing failed.
//
// # Architecture
//
// The control-flow contract is the whole point of the package:
//
//   - Ensure models prerequisites. The first failing Ensure short-circuits
//     the chain; later Ensure and ValidateAll checks are never evaluated and
//     only that first failure is reported.
//   - ValidateAll models a flat set of independent business rules. Every
//     check runs and every failure is recorded, so the caller gets the
//     complete list of violations in one pass.
//   - Combine merges already-computed error lists from related Results. It
//     evaluates nothing and is applied regardless of short-circuit state:
//     sub-results are finished work, not checks to suppress.
//   - OnSuccess invokes the supplier only when the Result is error free.
//
// A Result is a mutable accumulator owned by a single goroutine. To
// validate independent sub-objects concurrently, give each branch its own
// Result and have one owner merge them with Combine afterwards.
//
// # Usage
//
//	res := result.ResultFor[Account]().
//		Ensure(func() bool { return req != nil }, "request is required").
//		ValidateAll(
//			result.ValidateValue(func() bool { return req.Name != "" }, "name is required", req.Name),
//			result.ValidateValue(func() bool { return req.Age >= 18 }, "must be an adult", req.Age),
//		).
//		Combine(addressResult, emailResult).
//		OnSuccess(func() Account { return newAccount(req) })
//
//	if res.HasErrors() {
//		return res.Errors() // Errors implements the error interface
//	}
//	account := res.MustGet()
//
// # Error Handling
//
// Validation failures are data: an ordered Errors collection of
// message/actual-value entries with a stable textual rendering. The only
// abrupt failure is ErrNoSuccessValue, returned by Get (and panicked by
// MustGet) when no value was ever materialized; it signals caller misuse
// and is deliberately kept distinct from the domain error channel.
package result
