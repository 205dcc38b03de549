package specification

// Specification is a zero-argument predicate over domain state captured by
// the closure. It satisfies result.Check directly, so specifications can be
// passed to Ensure without conversion.
type Specification func() bool

// IsSatisfied evaluates the specification.
func (s Specification) IsSatisfied() bool {
	return s()
}

// And returns a specification satisfied when the receiver and every given
// specification are satisfied. Evaluation stops at the first unsatisfied
// one.
func (s Specification) And(others ...Specification) Specification {
	return func() bool {
		if !s() {
			return false
		}
		for _, other := range others {
			if !other() {
				return false
			}
		}
		return true
	}
}

// Or returns a specification satisfied when the receiver or any given
// specification is satisfied. Evaluation stops at the first satisfied one.
func (s Specification) Or(others ...Specification) Specification {
	return func() bool {
		if s() {
			return true
		}
		for _, other := range others {
			if other() {
				return true
			}
		}
		return false
	}
}

// Not returns the negation of the specification.
func (s Specification) Not() Specification {
	return func() bool {
		return !s()
	}
}

// All returns a specification satisfied when every given specification is
// satisfied. With no arguments it is always satisfied.
func All(specs ...Specification) Specification {
	return func() bool {
		for _, spec := range specs {
			if !spec() {
				return false
			}
		}
		return true
	}
}

// Any returns a specification satisfied when at least one given
// specification is satisfied. With no arguments it is never satisfied.
func Any(specs ...Specification) Specification {
	return func() bool {
		for _, spec := range specs {
			if spec() {
				return true
			}
		}
		return false
	}
}

// Always is satisfied unconditionally. Useful as a neutral element in tests
// and composed rules.
func Always() bool { return true }

// Never is unsatisfied unconditionally.
func Never() bool { return false }
