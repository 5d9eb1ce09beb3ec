package query

import (
	"strings"

	"github.com/roach88/tql/internal/pattern"
	"github.com/roach88/tql/internal/token"
)

// Match is a match clause over an ordered list of patterns, with an
// optional get filter.
type Match struct {
	patterns []pattern.Pattern
	filter   []pattern.UnboundVariable
}

// NewMatch returns the match clause over patterns.
func NewMatch(patterns ...pattern.Pattern) Match {
	return Match{patterns: clonePatterns(patterns)}
}

// Get returns a copy of m that reports only vars.
func (m Match) Get(vars ...pattern.UnboundVariable) Match {
	m.filter = cloneVars(vars)
	return m
}

// Group returns m grouped by v.
func (m Match) Group(v pattern.UnboundVariable) MatchGroup {
	return MatchGroup{match: m, variable: v}
}

// Patterns returns a copy of the clause's patterns.
func (m Match) Patterns() []pattern.Pattern {
	return clonePatterns(m.patterns)
}

// Filter returns a copy of the get filter.
func (m Match) Filter() []pattern.UnboundVariable {
	return cloneVars(m.filter)
}

// Conjunction returns the clause's patterns as a single conjunction.
func (m Match) Conjunction() pattern.Conjunction {
	return pattern.NewConjunction(m.patterns...)
}

// Variables returns the distinct visible named variables bound by the
// clause's patterns.
func (m Match) Variables() []pattern.UnboundVariable {
	return pattern.NamedVariables(m.patterns...)
}

// Equal reports structural equality.
func (m Match) Equal(other Match) bool {
	return pattern.EqualAll(m.patterns, other.patterns) && equalVars(m.filter, other.filter)
}

func (m Match) String() string {
	var b strings.Builder
	b.WriteString(token.Match.String())
	for _, p := range m.patterns {
		b.WriteString(token.Newline)
		b.WriteString(p.String())
		b.WriteString(token.Semicolon)
	}
	if len(m.filter) > 0 {
		b.WriteString(token.Newline)
		b.WriteString(token.Get.String())
		b.WriteString(token.Space)
		b.WriteString(joinVars(m.filter))
		b.WriteString(token.Semicolon)
	}
	return b.String()
}

// Kind returns KindMatch.
func (Match) Kind() Kind { return KindMatch }

// IntoQuery returns m as a Query.
func (m Match) IntoQuery() Query { return m }

func (Match) queryNode() {}

func (Match) aggregateSeparator() string { return token.Newline }

func (Match) aggregateKind() Kind { return KindMatchAggregate }

// Count returns "count;" over m.
func (m Match) Count() AggregateQuery[Match] { return NewCount(m) }

// Aggregate returns method over v on m.
func (m Match) Aggregate(method token.Aggregate, v pattern.UnboundVariable) AggregateQuery[Match] {
	return NewAggregate(m, method, v)
}

// Max returns the maximum of v.
func (m Match) Max(v pattern.UnboundVariable) AggregateQuery[Match] {
	return m.Aggregate(token.Max, v)
}

// Min returns the minimum of v.
func (m Match) Min(v pattern.UnboundVariable) AggregateQuery[Match] {
	return m.Aggregate(token.Min, v)
}

// Mean returns the mean of v.
func (m Match) Mean(v pattern.UnboundVariable) AggregateQuery[Match] {
	return m.Aggregate(token.Mean, v)
}

// Median returns the median of v.
func (m Match) Median(v pattern.UnboundVariable) AggregateQuery[Match] {
	return m.Aggregate(token.Median, v)
}

// Std returns the standard deviation of v.
func (m Match) Std(v pattern.UnboundVariable) AggregateQuery[Match] {
	return m.Aggregate(token.Std, v)
}

// Sum returns the sum of v.
func (m Match) Sum(v pattern.UnboundVariable) AggregateQuery[Match] {
	return m.Aggregate(token.Sum, v)
}

func clonePatterns(patterns []pattern.Pattern) []pattern.Pattern {
	if len(patterns) == 0 {
		return nil
	}
	out := make([]pattern.Pattern, len(patterns))
	copy(out, patterns)
	return out
}

func cloneVars(vars []pattern.UnboundVariable) []pattern.UnboundVariable {
	if len(vars) == 0 {
		return nil
	}
	out := make([]pattern.UnboundVariable, len(vars))
	copy(out, vars)
	return out
}

func equalVars(a, b []pattern.UnboundVariable) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func joinVars(vars []pattern.UnboundVariable) string {
	parts := make([]string, len(vars))
	for i, v := range vars {
		parts[i] = v.String()
	}
	return strings.Join(parts, token.Comma+token.Space)
}
