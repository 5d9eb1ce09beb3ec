package pattern

import (
	"strings"

	"github.com/roach88/tql/internal/common"
	"github.com/roach88/tql/internal/token"
)

// Conjunction is an ordered AND of patterns.
//
// Order carries no logical meaning but is kept so that rendering
// reproduces the original clause order.
type Conjunction struct {
	patterns []Pattern
}

// NewConjunction returns the conjunction of patterns. An empty conjunction
// is allowed and renders as an empty block.
func NewConjunction(patterns ...Pattern) Conjunction {
	return Conjunction{patterns: clonePatterns(patterns)}
}

// Patterns returns a copy of the conjunction's children.
func (c Conjunction) Patterns() []Pattern {
	return clonePatterns(c.patterns)
}

// Len returns the number of children.
func (c Conjunction) Len() int {
	return len(c.patterns)
}

// Equal reports structural equality.
func (c Conjunction) Equal(other Conjunction) bool {
	return equalAll(c.patterns, other.patterns)
}

// String renders
//
//	{
//	  <child>;
//	}
//
// with each child's lines indented one unit.
func (c Conjunction) String() string {
	var b strings.Builder
	b.WriteString(token.CurlyOpen + token.Newline)
	for _, p := range c.patterns {
		b.WriteString(common.Indent(p.String()))
		b.WriteString(token.Semicolon + token.Newline)
	}
	b.WriteString(token.CurlyClose)
	return b.String()
}

func (Conjunction) patternNode() {}

func clonePatterns(patterns []Pattern) []Pattern {
	if len(patterns) == 0 {
		return nil
	}
	out := make([]Pattern, len(patterns))
	copy(out, patterns)
	return out
}

// asBlock wraps any non-conjunction in a single-element conjunction.
func asBlock(p Pattern) Conjunction {
	if c, ok := p.(Conjunction); ok {
		return c
	}
	return NewConjunction(p)
}
