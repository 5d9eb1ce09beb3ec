package document

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/tql/internal/parser"
	"github.com/roach88/tql/internal/pattern"
	"github.com/roach88/tql/internal/query"
	"github.com/roach88/tql/internal/token"
)

// Document keys.
const (
	keyMatch     = "match"
	keyGet       = "get"
	keyGroup     = "group"
	keyAggregate = "aggregate"
	keyMethod    = "method"
	keyVar       = "var"
	keyIs        = "is"
	keyAnd       = "and"
	keyOr        = "or"
	keyNot       = "not"
)

// builder turns a node tree into a query, reporting every problem it finds
// to the listener and carrying on where it can.
type builder struct {
	listener *parser.ErrorListener
}

func (b *builder) errorf(n *node, format string, args ...any) {
	b.listener.SyntaxError(n.line, n.col, fmt.Sprintf(format, args...))
}

func (b *builder) expect(n *node, kind nodeKind, what string) bool {
	if n.kind != kind {
		b.errorf(n, "%s must be a %s, found %s", what, kind, n.kind)
		return false
	}
	return true
}

// document builds the top-level query.
func (b *builder) document(root *node) query.Query {
	if !b.expect(root, mappingNode, "document") {
		return nil
	}
	for _, k := range root.keys {
		switch k.value {
		case keyMatch, keyGet, keyGroup, keyAggregate:
		default:
			b.errorf(k, "unknown document key %q", k.value)
		}
	}

	matchNode, ok := root.field(keyMatch)
	if !ok {
		b.errorf(root, "document requires a %q clause", keyMatch)
		return nil
	}
	if !b.expect(matchNode, sequenceNode, keyMatch) {
		return nil
	}
	m := query.NewMatch(b.patterns(matchNode)...)
	bound := boundSet(m)

	if getNode, ok := root.field(keyGet); ok && b.expect(getNode, sequenceNode, keyGet) {
		var vars []pattern.UnboundVariable
		for _, item := range getNode.items {
			if v, ok := b.boundVar(item, bound, keyGet); ok {
				vars = append(vars, v)
			}
		}
		m = m.Get(vars...)
	}

	aggNode, hasAgg := root.field(keyAggregate)
	groupNode, hasGroup := root.field(keyGroup)

	if !hasGroup {
		if !hasAgg {
			return m
		}
		return b.aggregateMatch(m, aggNode, bound)
	}

	gv, ok := b.boundVar(groupNode, bound, keyGroup)
	if !ok {
		return nil
	}
	g := m.Group(gv)
	if !hasAgg {
		return g
	}
	return b.aggregateGroup(g, aggNode, bound)
}

// aggregateSpec is a validated aggregate clause.
type aggregateSpec struct {
	method   token.Aggregate
	variable pattern.UnboundVariable
}

func (b *builder) aggregate(n *node, bound map[pattern.Reference]bool) (aggregateSpec, bool) {
	if !b.expect(n, mappingNode, keyAggregate) {
		return aggregateSpec{}, false
	}
	for _, k := range n.keys {
		if k.value != keyMethod && k.value != keyVar {
			b.errorf(k, "unknown aggregate key %q", k.value)
			return aggregateSpec{}, false
		}
	}
	methodNode, ok := n.field(keyMethod)
	if !ok {
		b.errorf(n, "aggregate requires a %q", keyMethod)
		return aggregateSpec{}, false
	}
	method, err := token.ParseAggregate(methodNode.value)
	if err != nil {
		b.errorf(methodNode, "%v", err)
		return aggregateSpec{}, false
	}

	varNode, hasVar := n.field(keyVar)
	switch {
	case !method.TakesVariable() && hasVar:
		b.errorf(varNode, "%s takes no variable", method)
		return aggregateSpec{}, false
	case method.TakesVariable() && !hasVar:
		b.errorf(methodNode, "%s requires a variable", method)
		return aggregateSpec{}, false
	case !hasVar:
		return aggregateSpec{method: method}, true
	}

	v, ok := b.boundVar(varNode, bound, keyAggregate)
	if !ok {
		return aggregateSpec{}, false
	}
	return aggregateSpec{method: method, variable: v}, true
}

func (b *builder) aggregateMatch(m query.Match, n *node, bound map[pattern.Reference]bool) query.Query {
	spec, ok := b.aggregate(n, bound)
	if !ok {
		return nil
	}
	if spec.method == token.Count {
		return m.Count().IntoQuery()
	}
	return m.Aggregate(spec.method, spec.variable).IntoQuery()
}

func (b *builder) aggregateGroup(g query.MatchGroup, n *node, bound map[pattern.Reference]bool) query.Query {
	spec, ok := b.aggregate(n, bound)
	if !ok {
		return nil
	}
	if spec.method == token.Count {
		return g.Count().IntoQuery()
	}
	return g.Aggregate(spec.method, spec.variable).IntoQuery()
}

func (b *builder) patterns(n *node) []pattern.Pattern {
	var out []pattern.Pattern
	for _, item := range n.items {
		if p, ok := b.pattern(item); ok {
			out = append(out, p)
		}
	}
	return out
}

// block builds a conjunction from a sequence, or a single pattern from a
// mapping.
func (b *builder) block(n *node, what string) (pattern.Pattern, bool) {
	switch n.kind {
	case sequenceNode:
		return pattern.NewConjunction(b.patterns(n)...), true
	case mappingNode:
		return b.pattern(n)
	default:
		b.errorf(n, "%s must be a pattern or a list of patterns", what)
		return nil, false
	}
}

func (b *builder) pattern(n *node) (pattern.Pattern, bool) {
	if !b.expect(n, mappingNode, "pattern") {
		return nil, false
	}
	for _, k := range n.keys {
		switch k.value {
		case keyVar, keyIs, keyAnd, keyOr, keyNot:
		default:
			b.errorf(k, "unknown pattern key %q", k.value)
			return nil, false
		}
	}

	varNode, hasVar := n.field(keyVar)
	isNode, hasIs := n.field(keyIs)

	switch {
	case hasVar:
		if len(n.keys) > 2 || (len(n.keys) == 2 && !hasIs) {
			b.errorf(n, "a variable pattern takes only %q and %q", keyVar, keyIs)
			return nil, false
		}
		v, ok := b.variable(varNode)
		if !ok {
			return nil, false
		}
		if !hasIs {
			return v.IntoConcept(), true
		}
		target, ok := b.variable(isNode)
		if !ok {
			return nil, false
		}
		return v.Is(pattern.IsUnbound(target)), true

	case len(n.keys) != 1:
		b.errorf(n, "a pattern takes exactly one of %q, %q, %q, %q", keyIs, keyAnd, keyOr, keyNot)
		return nil, false

	case hasIs:
		target, ok := b.variable(isNode)
		if !ok {
			return nil, false
		}
		return pattern.FromConstraint(pattern.IsUnbound(target)), true
	}

	key, value := n.keys[0].value, n.values[0]
	switch key {
	case keyAnd:
		if !b.expect(value, sequenceNode, keyAnd) {
			return nil, false
		}
		return pattern.NewConjunction(b.patterns(value)...), true
	case keyOr:
		if !b.expect(value, sequenceNode, keyOr) {
			return nil, false
		}
		var alts []pattern.Pattern
		for _, item := range value.items {
			if p, ok := b.block(item, "alternative"); ok {
				alts = append(alts, p)
			}
		}
		return pattern.NewDisjunction(alts...), true
	default:
		inner, ok := b.block(value, keyNot)
		if !ok {
			return nil, false
		}
		return pattern.NewNegation(inner), true
	}
}

func (b *builder) variable(n *node) (pattern.UnboundVariable, bool) {
	if !b.expect(n, scalarNode, "variable") {
		return pattern.UnboundVariable{}, false
	}
	v, err := pattern.ParseVar(norm.NFC.String(n.value))
	if err != nil {
		b.errorf(n, "%v", err)
		return pattern.UnboundVariable{}, false
	}
	return v, true
}

// boundVar reads a variable that must already be bound by the match clause.
func (b *builder) boundVar(n *node, bound map[pattern.Reference]bool, clause string) (pattern.UnboundVariable, bool) {
	v, ok := b.variable(n)
	if !ok {
		return v, false
	}
	if !bound[v.Reference] {
		b.errorf(n, "%s variable %s is not bound in match", clause, v)
		return v, false
	}
	return v, true
}

func boundSet(m query.Match) map[pattern.Reference]bool {
	bound := make(map[pattern.Reference]bool)
	for _, v := range m.Variables() {
		bound[v.Reference] = true
	}
	return bound
}
