// Package query defines top-level statements: match clauses, grouped
// match clauses and aggregates over either.
//
// BUILDER CAPABILITY:
//
// Aggregates are built from a finished base query, never assembled by
// hand:
//
//	m := query.NewMatch(pattern.Var("x").Is(pattern.IsName("y")))
//	m.Count()                              // match ... count;
//	m.Group(pattern.Var("x")).Max(pattern.Var("y"))
//
// BaseQuery is the capability bound: a base query renders canonically,
// compares structurally and is immutable. It is sealed, so exactly Match
// and MatchGroup satisfy it, and each exposes the AggregateBuilder methods.
//
// COUNT INVARIANT:
//
// Count never carries a variable and every other method carries exactly
// one. NewCount and the named methods (Max, Min, Mean, Median, Std, Sum)
// guarantee it by their signatures. Aggregate is the generic entry point;
// the pairing it receives is the caller's responsibility.
//
// QUERY SUM TYPE:
//
// Query is a sealed interface with four kinds:
//
//	KindMatch               Match
//	KindMatchGroup          MatchGroup
//	KindMatchAggregate      AggregateQuery[Match]
//	KindMatchGroupAggregate AggregateQuery[MatchGroup]
//
// AggregateQuery.IntoQuery is the only way an aggregate becomes a Query.
//
// RENDERING:
//
// An aggregate over a match puts its method on a new line; an aggregate
// over a group puts it after a space, on the group line:
//
//	match                match
//	$x is $y;            $x is $y;
//	count;               group $x; count;
package query
