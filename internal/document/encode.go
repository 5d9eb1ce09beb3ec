package document

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/roach88/tql/internal/pattern"
	"github.com/roach88/tql/internal/query"
	"github.com/roach88/tql/internal/token"
)

// Marshal writes q as a document in format. Loading the result yields a
// query equal to q, except that invisible anonymous variables come back
// visible.
func Marshal(q query.Query, format Format) ([]byte, error) {
	doc, err := encodeQuery(q)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatJSON:
		var v any
		if err := doc.Decode(&v); err != nil {
			return nil, fmt.Errorf("encoding document: %w", err)
		}
		return json.MarshalIndent(v, "", "  ")
	default:
		return nil, fmt.Errorf("cannot write documents as %q", format)
	}
}

func encodeQuery(q query.Query) (*yaml.Node, error) {
	switch qq := q.(type) {
	case query.Match:
		return encodeMatch(qq)
	case query.MatchGroup:
		doc, err := encodeMatch(qq.Match())
		if err != nil {
			return nil, err
		}
		appendField(doc, keyGroup, scalar(varName(qq.Variable())))
		return doc, nil
	case query.MatchAggregate:
		doc, err := encodeMatch(qq.Base())
		if err != nil {
			return nil, err
		}
		appendField(doc, keyAggregate, encodeAggregate(qq.Method(), qq.Var))
		return doc, nil
	case query.MatchGroupAggregate:
		g := qq.Base()
		doc, err := encodeMatch(g.Match())
		if err != nil {
			return nil, err
		}
		appendField(doc, keyGroup, scalar(varName(g.Variable())))
		appendField(doc, keyAggregate, encodeAggregate(qq.Method(), qq.Var))
		return doc, nil
	default:
		return nil, fmt.Errorf("unsupported query type: %T", q)
	}
}

func encodeMatch(m query.Match) (*yaml.Node, error) {
	ps, err := encodePatterns(m.Patterns())
	if err != nil {
		return nil, err
	}
	doc := mapping()
	appendField(doc, keyMatch, ps)
	if filter := m.Filter(); len(filter) > 0 {
		vars := sequence()
		for _, v := range filter {
			vars.Content = append(vars.Content, scalar(varName(v)))
		}
		appendField(doc, keyGet, vars)
	}
	return doc, nil
}

func encodeAggregate(method token.Aggregate, variable func() (pattern.UnboundVariable, bool)) *yaml.Node {
	n := mapping()
	appendField(n, keyMethod, scalar(method.String()))
	if v, ok := variable(); ok {
		appendField(n, keyVar, scalar(varName(v)))
	}
	return n
}

func encodePatterns(ps []pattern.Pattern) (*yaml.Node, error) {
	seq := sequence()
	for _, p := range ps {
		n, err := encodePattern(p)
		if err != nil {
			return nil, err
		}
		seq.Content = append(seq.Content, n)
	}
	return seq, nil
}

func encodePattern(p pattern.Pattern) (*yaml.Node, error) {
	n := mapping()
	switch pat := p.(type) {
	case pattern.ConceptVariable:
		appendField(n, keyVar, scalar(refName(pat.Reference)))
		if c, ok := pat.IsConstraint(); ok {
			target, err := isTarget(c)
			if err != nil {
				return nil, err
			}
			appendField(n, keyIs, scalar(target))
		}
	case pattern.ConstraintPattern:
		c, ok := pat.Constraint.(pattern.IsConstraint)
		if !ok {
			return nil, fmt.Errorf("unsupported constraint: %T", pat.Constraint)
		}
		target, err := isTarget(c)
		if err != nil {
			return nil, err
		}
		appendField(n, keyIs, scalar(target))
	case pattern.Conjunction:
		ps, err := encodePatterns(pat.Patterns())
		if err != nil {
			return nil, err
		}
		appendField(n, keyAnd, ps)
	case pattern.Disjunction:
		alts := sequence()
		for _, a := range pat.Alternatives() {
			block, err := encodeBlock(a)
			if err != nil {
				return nil, err
			}
			alts.Content = append(alts.Content, block)
		}
		appendField(n, keyOr, alts)
	case pattern.Negation:
		block, err := encodeBlock(pat.Inner())
		if err != nil {
			return nil, err
		}
		appendField(n, keyNot, block)
	default:
		return nil, fmt.Errorf("unsupported pattern type: %T", p)
	}
	return n, nil
}

// encodeBlock writes a conjunction as a bare list of its patterns.
func encodeBlock(p pattern.Pattern) (*yaml.Node, error) {
	if c, ok := p.(pattern.Conjunction); ok {
		return encodePatterns(c.Patterns())
	}
	return encodePattern(p)
}

// isTarget returns the name of an is constraint's variable. Documents
// cannot express a constrained target.
func isTarget(c pattern.IsConstraint) (string, error) {
	v := c.Variable()
	if len(v.Constraints()) > 0 {
		return "", fmt.Errorf("cannot encode constrained is target %s", v)
	}
	return refName(v.Reference), nil
}

func varName(v pattern.UnboundVariable) string {
	return refName(v.Reference)
}

func refName(r pattern.Reference) string {
	if r.IsName() {
		return r.Name()
	}
	return token.Anonymous
}

func mapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func sequence() *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func appendField(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, scalar(key), value)
}
