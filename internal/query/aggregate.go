package query

import (
	"fmt"
	"strings"

	"github.com/roach88/tql/internal/pattern"
	"github.com/roach88/tql/internal/token"
)

// BaseQuery is the bound on what an aggregate can reduce: a base query
// renders canonically, compares structurally and is immutable. The
// unexported methods seal it to Match and MatchGroup, which also fixes the
// separator before the aggregate line and the Kind the aggregate reports.
type BaseQuery[T any] interface {
	fmt.Stringer
	Equal(T) bool
	aggregateSeparator() string
	aggregateKind() Kind
}

// AggregateBuilder is the fluent aggregate surface of a base query.
type AggregateBuilder[T BaseQuery[T]] interface {
	Count() AggregateQuery[T]
	Aggregate(method token.Aggregate, v pattern.UnboundVariable) AggregateQuery[T]
	Max(v pattern.UnboundVariable) AggregateQuery[T]
	Min(v pattern.UnboundVariable) AggregateQuery[T]
	Mean(v pattern.UnboundVariable) AggregateQuery[T]
	Median(v pattern.UnboundVariable) AggregateQuery[T]
	Std(v pattern.UnboundVariable) AggregateQuery[T]
	Sum(v pattern.UnboundVariable) AggregateQuery[T]
}

var (
	_ AggregateBuilder[Match]      = Match{}
	_ AggregateBuilder[MatchGroup] = MatchGroup{}
)

// AggregateQuery reduces the answers of a base query with one method.
type AggregateQuery[T BaseQuery[T]] struct {
	base     T
	method   token.Aggregate
	variable *pattern.UnboundVariable
}

// MatchAggregate is an aggregate over a match clause.
type MatchAggregate = AggregateQuery[Match]

// MatchGroupAggregate is an aggregate within each group of a grouped match.
type MatchGroupAggregate = AggregateQuery[MatchGroup]

// NewCount returns the count of base's answers. It never carries a variable.
func NewCount[T BaseQuery[T]](base T) AggregateQuery[T] {
	return AggregateQuery[T]{base: base, method: token.Count}
}

// NewAggregate returns method over v on base.
func NewAggregate[T BaseQuery[T]](base T, method token.Aggregate, v pattern.UnboundVariable) AggregateQuery[T] {
	return AggregateQuery[T]{base: base, method: method, variable: &v}
}

// Base returns the aggregated query.
func (a AggregateQuery[T]) Base() T { return a.base }

// Method returns the aggregate method.
func (a AggregateQuery[T]) Method() token.Aggregate { return a.method }

// Var returns the aggregated variable; ok is false for count.
func (a AggregateQuery[T]) Var() (v pattern.UnboundVariable, ok bool) {
	if a.variable == nil {
		return pattern.UnboundVariable{}, false
	}
	return *a.variable, true
}

// Equal reports structural equality.
func (a AggregateQuery[T]) Equal(other AggregateQuery[T]) bool {
	if a.method != other.method || (a.variable == nil) != (other.variable == nil) {
		return false
	}
	if a.variable != nil && *a.variable != *other.variable {
		return false
	}
	return a.base.Equal(other.base)
}

func (a AggregateQuery[T]) String() string {
	var b strings.Builder
	b.WriteString(a.base.String())
	b.WriteString(a.base.aggregateSeparator())
	b.WriteString(a.method.String())
	if a.variable != nil {
		b.WriteString(token.Space)
		b.WriteString(a.variable.String())
	}
	b.WriteString(token.Semicolon)
	return b.String()
}

// Kind returns KindMatchAggregate or KindMatchGroupAggregate.
func (a AggregateQuery[T]) Kind() Kind { return a.base.aggregateKind() }

// IntoQuery returns a as a Query tagged with its aggregate kind.
func (a AggregateQuery[T]) IntoQuery() Query { return a }

func (AggregateQuery[T]) queryNode() {}
