package pattern

import "fmt"

// Pattern is a node of a match clause.
//
// This is a sealed interface - only types in this package implement it.
//
// Pattern types:
//   - Conjunction: ordered AND of sub-patterns, rendered as a block
//   - Disjunction: OR of blocks
//   - Negation: NOT of a block
//   - ConstraintPattern: a bare constraint, e.g. "is $x"
//   - ConceptVariable: a variable and its constraints, e.g. "$x is $y"
type Pattern interface {
	fmt.Stringer
	patternNode()
}

// ConstraintPattern places a constraint directly in a pattern position.
type ConstraintPattern struct {
	Constraint Constraint
}

// FromConstraint returns c as a pattern.
func FromConstraint(c Constraint) ConstraintPattern {
	return ConstraintPattern{Constraint: c}
}

func (p ConstraintPattern) String() string {
	if p.Constraint == nil {
		return ""
	}
	return p.Constraint.String()
}

func (ConstraintPattern) patternNode() {}

// Equal reports structural equality of two patterns. Child order is
// significant: conjunction is commutative, but equal trees must render
// identically.
func Equal(a, b Pattern) bool {
	switch pa := a.(type) {
	case nil:
		return b == nil
	case Conjunction:
		pb, ok := b.(Conjunction)
		return ok && equalAll(pa.patterns, pb.patterns)
	case Disjunction:
		pb, ok := b.(Disjunction)
		return ok && equalAll(pa.alternatives, pb.alternatives)
	case Negation:
		pb, ok := b.(Negation)
		return ok && Equal(pa.inner, pb.inner)
	case ConstraintPattern:
		pb, ok := b.(ConstraintPattern)
		return ok && EqualConstraint(pa.Constraint, pb.Constraint)
	case ConceptVariable:
		pb, ok := b.(ConceptVariable)
		return ok && pa.Equal(pb)
	default:
		return false
	}
}

// EqualAll reports pairwise structural equality of two pattern lists.
func EqualAll(a, b []Pattern) bool {
	return equalAll(a, b)
}

func equalAll(a, b []Pattern) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
