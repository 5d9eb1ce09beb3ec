package pattern

import "github.com/roach88/tql/internal/token"

// Negation is a NOT over a block.
type Negation struct {
	inner Pattern
}

// NewNegation negates p, wrapping it in a block if it is not one.
func NewNegation(p Pattern) Negation {
	return Negation{inner: asBlock(p)}
}

// Inner returns the negated block.
func (n Negation) Inner() Pattern {
	return n.inner
}

func (n Negation) String() string {
	if n.inner == nil {
		return token.Not.String() + token.Space + NewConjunction().String()
	}
	return token.Not.String() + token.Space + n.inner.String()
}

func (Negation) patternNode() {}
