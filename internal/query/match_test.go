package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/tql/internal/pattern"
)

func TestMatch_Rendering(t *testing.T) {
	m := NewMatch(
		pattern.Var("x").Is(pattern.IsName("y")),
		pattern.FromConstraint(pattern.IsName("z")),
	)
	assert.Equal(t, "match\n$x is $y;\nis $z;", m.String())
	assert.Equal(t, KindMatch, m.Kind())
}

func TestMatch_Get(t *testing.T) {
	base := NewMatch(pattern.Var("x").Is(pattern.IsName("y")))
	filtered := base.Get(pattern.Var("x"))

	assert.Equal(t, "match\n$x is $y;\nget $x;", filtered.String())
	assert.Empty(t, base.Filter(), "Get must not modify the receiver")
	assert.False(t, base.Equal(filtered))
}

func TestMatch_Group(t *testing.T) {
	g := NewMatch(pattern.Var("x").Is(pattern.IsName("y"))).Group(pattern.Var("x"))

	assert.Equal(t, "match\n$x is $y;\ngroup $x;", g.String())
	assert.Equal(t, KindMatchGroup, g.Kind())
	assert.Equal(t, "$x", g.Variable().String())
}

func TestMatch_Variables(t *testing.T) {
	m := NewMatch(
		pattern.Var("x").Is(pattern.IsName("y")),
		pattern.FromConstraint(pattern.IsUnbound(pattern.HiddenVar())),
		pattern.Var("y").Is(pattern.IsName("z")),
	)

	vars := m.Variables()
	require.Len(t, vars, 3)
	assert.Equal(t, []string{"$x", "$y", "$z"}, []string{vars[0].String(), vars[1].String(), vars[2].String()})
}

func TestMatch_Conjunction(t *testing.T) {
	m := NewMatch(pattern.FromConstraint(pattern.IsName("x")))
	assert.Equal(t, "{\n  is $x;\n}", m.Conjunction().String())
}

func TestMatch_CopiesInput(t *testing.T) {
	ps := []pattern.Pattern{pattern.FromConstraint(pattern.IsName("x"))}
	m := NewMatch(ps...)
	ps[0] = pattern.FromConstraint(pattern.IsName("y"))

	assert.Equal(t, "match\nis $x;", m.String())
}

func TestEqual_Queries(t *testing.T) {
	m := NewMatch(pattern.Var("x").Is(pattern.IsName("y")))
	same := NewMatch(pattern.Var("x").Is(pattern.IsName("y")))
	other := NewMatch(pattern.Var("x").Is(pattern.IsName("z")))

	assert.True(t, Equal(m, same))
	assert.False(t, Equal(m, other))
	assert.False(t, Equal(m, m.Group(pattern.Var("x"))))
	assert.True(t, Equal(m.Group(pattern.Var("x")), same.Group(pattern.Var("x"))))
	assert.False(t, Equal(m.Group(pattern.Var("x")), same.Group(pattern.Var("y"))))
	assert.True(t, Equal(m.Count().IntoQuery(), same.Count().IntoQuery()))
	assert.False(t, Equal(m.Count().IntoQuery(), m.Group(pattern.Var("x")).Count().IntoQuery()))
	assert.True(t, Equal(nil, nil))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "match", KindMatch.String())
	assert.Equal(t, "match_group", KindMatchGroup.String())
	assert.Equal(t, "match_aggregate", KindMatchAggregate.String())
	assert.Equal(t, "match_group_aggregate", KindMatchGroupAggregate.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
