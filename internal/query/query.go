package query

import "fmt"

// Kind tags the shape a Query holds.
type Kind int

const (
	KindMatch Kind = iota
	KindMatchGroup
	KindMatchAggregate
	KindMatchGroupAggregate
)

func (k Kind) String() string {
	switch k {
	case KindMatch:
		return "match"
	case KindMatchGroup:
		return "match_group"
	case KindMatchAggregate:
		return "match_aggregate"
	case KindMatchGroupAggregate:
		return "match_group_aggregate"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Query is a complete statement.
//
// This is a sealed interface - only types in this package implement it.
type Query interface {
	fmt.Stringer
	Kind() Kind
	queryNode()
}

// Equal reports structural equality of two queries.
func Equal(a, b Query) bool {
	switch qa := a.(type) {
	case nil:
		return b == nil
	case Match:
		qb, ok := b.(Match)
		return ok && qa.Equal(qb)
	case MatchGroup:
		qb, ok := b.(MatchGroup)
		return ok && qa.Equal(qb)
	case AggregateQuery[Match]:
		qb, ok := b.(AggregateQuery[Match])
		return ok && qa.Equal(qb)
	case AggregateQuery[MatchGroup]:
		qb, ok := b.(AggregateQuery[MatchGroup])
		return ok && qa.Equal(qb)
	default:
		return false
	}
}
