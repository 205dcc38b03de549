// Package rules provides prebuilt validation constructors for common data
// types, each returning a result.Validation ready to drop into a
// ValidateAll call.
//
// Each source file groups a family of rules (`string_rules.go`,
// `numeric_rules.go`, `format_rules.go`, etc.). Every constructor captures
// the value under validation in a closure and pairs the check with a
// human-readable message; the actual value travels on the error entry for
// diagnostic context. The package holds no state and is goroutine-safe.
//
// # Usage
//
//	res := result.ResultFor[User]().
//		ValidateAll(
//			rules.Required("name", req.Name),
//			rules.LenBetween("username", req.Username, 3, 30),
//			rules.Email("email", req.Email),
//			rules.Min("age", req.Age, 18),
//			rules.UUID("tenant_id", req.TenantID),
//		).
//		OnSuccess(func() User { return newUser(req) })
//
// Expensive checks (network lookups, database queries) belong outside this
// package; wrap them in a result.Validation at the call site if needed.
package rules
