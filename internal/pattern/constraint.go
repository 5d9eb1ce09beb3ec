package pattern

import (
	"fmt"

	"github.com/roach88/tql/internal/token"
)

// Constraint is a typed predicate over one or more variables.
//
// This is a sealed interface - only types in this package implement it.
//
// Constraint types:
//   - IsConstraint: the owner and another concept variable are the same concept
type Constraint interface {
	fmt.Stringer
	Keyword() token.Constraint
	constraintNode()
}

// IsConstraint states that two concept variables denote the same concept.
// It owns the second variable; the first is whatever holds the constraint.
//
// Every input shape converges on the same value through IsName, IsUnbound
// and IsConcept. None of them can fail: only concept variables can be
// passed, and names were validated where they were read.
type IsConstraint struct {
	variable *ConceptVariable
}

// IsName returns "is $name".
func IsName(name string) IsConstraint {
	return IsUnbound(Var(name))
}

// IsUnbound returns "is v".
func IsUnbound(v UnboundVariable) IsConstraint {
	return IsConcept(v.IntoConcept())
}

// IsConcept returns "is v".
func IsConcept(v ConceptVariable) IsConstraint {
	return IsConstraint{variable: &v}
}

// Variable returns the constrained variable.
func (c IsConstraint) Variable() ConceptVariable {
	if c.variable == nil {
		return ConceptVariable{}
	}
	return *c.variable
}

// Keyword returns token.Is.
func (IsConstraint) Keyword() token.Constraint {
	return token.Is
}

// Equal reports structural equality.
func (c IsConstraint) Equal(other IsConstraint) bool {
	return c.Variable().Equal(other.Variable())
}

func (c IsConstraint) String() string {
	return c.Keyword().String() + token.Space + c.Variable().String()
}

func (IsConstraint) constraintNode() {}

// EqualConstraint reports structural equality of two constraints.
func EqualConstraint(a, b Constraint) bool {
	switch ca := a.(type) {
	case IsConstraint:
		cb, ok := b.(IsConstraint)
		return ok && ca.Equal(cb)
	case nil:
		return b == nil
	default:
		return false
	}
}
