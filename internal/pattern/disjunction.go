package pattern

import (
	"strings"

	"github.com/roach88/tql/internal/token"
)

// Disjunction is an OR of alternatives, each rendered as a block.
type Disjunction struct {
	alternatives []Pattern
}

// NewDisjunction returns the disjunction of alternatives. Alternatives that
// are not conjunctions are wrapped in one.
func NewDisjunction(alternatives ...Pattern) Disjunction {
	blocks := make([]Pattern, 0, len(alternatives))
	for _, a := range alternatives {
		blocks = append(blocks, asBlock(a))
	}
	return Disjunction{alternatives: blocks}
}

// Alternatives returns a copy of the disjunction's blocks.
func (d Disjunction) Alternatives() []Pattern {
	return clonePatterns(d.alternatives)
}

func (d Disjunction) String() string {
	parts := make([]string, len(d.alternatives))
	for i, a := range d.alternatives {
		parts[i] = a.String()
	}
	return strings.Join(parts, token.Space+token.Or.String()+token.Space)
}

func (Disjunction) patternNode() {}
