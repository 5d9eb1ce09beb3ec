package pattern

import (
	"strings"

	"github.com/roach88/tql/internal/token"
)

// UnboundVariable is a variable that has not yet been given a category.
// It is what aggregates, group and get clauses refer to.
type UnboundVariable struct {
	Reference Reference
}

// Var returns the unbound variable for a trusted name.
func Var(name string) UnboundVariable {
	return UnboundVariable{Reference: NamedReference(name)}
}

// ParseVar validates name and returns its unbound variable.
func ParseVar(name string) (UnboundVariable, error) {
	ref, err := ParseReference(name)
	if err != nil {
		return UnboundVariable{}, err
	}
	return UnboundVariable{Reference: ref}, nil
}

// AnonymousVar returns a visible anonymous variable ($_).
func AnonymousVar() UnboundVariable {
	return UnboundVariable{Reference: AnonymousReference(Visible)}
}

// HiddenVar returns an invisible anonymous variable. It renders as $_ but
// is never reported.
func HiddenVar() UnboundVariable {
	return UnboundVariable{Reference: AnonymousReference(Invisible)}
}

func (v UnboundVariable) String() string {
	return v.Reference.String()
}

// IntoConcept returns v as a concept variable with no constraints.
func (v UnboundVariable) IntoConcept() ConceptVariable {
	return ConceptVariable{Reference: v.Reference}
}

// Is returns the concept variable "v is c".
func (v UnboundVariable) Is(c IsConstraint) ConceptVariable {
	return v.IntoConcept().Is(c)
}

// ConceptVariable is a variable in the concept category, optionally
// carrying an is constraint.
type ConceptVariable struct {
	Reference Reference
	is        *IsConstraint
}

// Is returns a copy of v constrained by c.
func (v ConceptVariable) Is(c IsConstraint) ConceptVariable {
	v.is = &c
	return v
}

// IsConstraint returns v's is constraint, if any.
func (v ConceptVariable) IsConstraint() (IsConstraint, bool) {
	if v.is == nil {
		return IsConstraint{}, false
	}
	return *v.is, true
}

// Constraints returns v's constraints in rendering order.
func (v ConceptVariable) Constraints() []Constraint {
	if v.is == nil {
		return nil
	}
	return []Constraint{*v.is}
}

// Equal reports structural equality.
func (v ConceptVariable) Equal(other ConceptVariable) bool {
	if v.Reference != other.Reference {
		return false
	}
	if (v.is == nil) != (other.is == nil) {
		return false
	}
	return v.is == nil || v.is.Equal(*other.is)
}

func (v ConceptVariable) String() string {
	parts := []string{v.Reference.String()}
	for _, c := range v.Constraints() {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, token.Space)
}

func (ConceptVariable) patternNode() {}
