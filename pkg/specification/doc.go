// Package specification provides a minimal predicate type for expressing
// domain rules as composable boolean checks.
//
// A Specification is just a func() bool with combinator methods (And, Or,
// Not) and package-level helpers (All, Any, Always, Never). Because the
// result package declares its Check as a type alias for func() bool, a
// Specification can be handed to Result.Ensure directly:
//
//	adult := specification.Specification(func() bool { return age >= 18 })
//	verified := specification.Specification(func() bool { return emailVerified })
//
//	res := result.ResultFor[Member]().
//		Ensure(adult.And(verified), "must be a verified adult")
//
// Specifications are assumed side-effect free; combinators may skip
// evaluation of later predicates once the outcome is decided.
package specification
