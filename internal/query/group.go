package query

import (
	"github.com/roach88/tql/internal/pattern"
	"github.com/roach88/tql/internal/token"
)

// MatchGroup is a match clause grouped by one variable.
type MatchGroup struct {
	match    Match
	variable pattern.UnboundVariable
}

// Match returns the grouped clause.
func (g MatchGroup) Match() Match { return g.match }

// Variable returns the group variable.
func (g MatchGroup) Variable() pattern.UnboundVariable { return g.variable }

// Equal reports structural equality.
func (g MatchGroup) Equal(other MatchGroup) bool {
	return g.variable == other.variable && g.match.Equal(other.match)
}

func (g MatchGroup) String() string {
	return g.match.String() + token.Newline +
		token.Group.String() + token.Space + g.variable.String() + token.Semicolon
}

// Kind returns KindMatchGroup.
func (MatchGroup) Kind() Kind { return KindMatchGroup }

// IntoQuery returns g as a Query.
func (g MatchGroup) IntoQuery() Query { return g }

func (MatchGroup) queryNode() {}

func (MatchGroup) aggregateSeparator() string { return token.Space }

func (MatchGroup) aggregateKind() Kind { return KindMatchGroupAggregate }

// Count returns "count;" over each group.
func (g MatchGroup) Count() AggregateQuery[MatchGroup] { return NewCount(g) }

// Aggregate returns method over v within each group.
func (g MatchGroup) Aggregate(method token.Aggregate, v pattern.UnboundVariable) AggregateQuery[MatchGroup] {
	return NewAggregate(g, method, v)
}

// Max returns the maximum of v.
func (g MatchGroup) Max(v pattern.UnboundVariable) AggregateQuery[MatchGroup] {
	return g.Aggregate(token.Max, v)
}

// Min returns the minimum of v.
func (g MatchGroup) Min(v pattern.UnboundVariable) AggregateQuery[MatchGroup] {
	return g.Aggregate(token.Min, v)
}

// Mean returns the mean of v.
func (g MatchGroup) Mean(v pattern.UnboundVariable) AggregateQuery[MatchGroup] {
	return g.Aggregate(token.Mean, v)
}

// Median returns the median of v.
func (g MatchGroup) Median(v pattern.UnboundVariable) AggregateQuery[MatchGroup] {
	return g.Aggregate(token.Median, v)
}

// Std returns the standard deviation of v.
func (g MatchGroup) Std(v pattern.UnboundVariable) AggregateQuery[MatchGroup] {
	return g.Aggregate(token.Std, v)
}

// Sum returns the sum of v.
func (g MatchGroup) Sum(v pattern.UnboundVariable) AggregateQuery[MatchGroup] {
	return g.Aggregate(token.Sum, v)
}
