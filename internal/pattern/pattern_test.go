package pattern

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestConjunction_SingleConstraint(t *testing.T) {
	c := NewConjunction(FromConstraint(IsName("x")))
	assert.Equal(t, "{\n  is $x;\n}", c.String())
}

func TestConjunction_Empty(t *testing.T) {
	assert.Equal(t, "{\n}", NewConjunction().String())
	assert.Equal(t, 0, NewConjunction().Len())
}

func TestConjunction_PreservesOrder(t *testing.T) {
	c := NewConjunction(
		Var("b").Is(IsName("c")),
		Var("a").Is(IsName("b")),
	)
	assert.Equal(t, "{\n  $b is $c;\n  $a is $b;\n}", c.String())
}

func TestConjunction_Nested(t *testing.T) {
	inner := NewConjunction(FromConstraint(IsName("x")))
	outer := NewConjunction(inner, Var("y").Is(IsName("z")))

	want := "{\n" +
		"  {\n" +
		"    is $x;\n" +
		"  };\n" +
		"  $y is $z;\n" +
		"}"
	assert.Equal(t, want, outer.String())
}

func TestConjunction_CopiesInput(t *testing.T) {
	children := []Pattern{FromConstraint(IsName("x"))}
	c := NewConjunction(children...)
	children[0] = FromConstraint(IsName("y"))

	assert.Equal(t, "{\n  is $x;\n}", c.String())

	got := c.Patterns()
	got[0] = FromConstraint(IsName("z"))
	assert.Equal(t, "{\n  is $x;\n}", c.String())
}

func TestDisjunction_Rendering(t *testing.T) {
	d := NewDisjunction(
		NewConjunction(Var("x").Is(IsName("y"))),
		Var("x").Is(IsName("z")),
	)

	want := "{\n  $x is $y;\n} or {\n  $x is $z;\n}"
	assert.Equal(t, want, d.String())
	require.Len(t, d.Alternatives(), 2)
	assert.IsType(t, Conjunction{}, d.Alternatives()[1])
}

func TestNegation_Rendering(t *testing.T) {
	n := NewNegation(Var("x").Is(IsName("y")))
	assert.Equal(t, "not {\n  $x is $y;\n}", n.String())

	inConj := NewConjunction(n)
	assert.Equal(t, "{\n  not {\n    $x is $y;\n  };\n}", inConj.String())
}

func TestEqual(t *testing.T) {
	a := NewConjunction(Var("x").Is(IsName("y")), FromConstraint(IsName("z")))
	b := NewConjunction(Var("x").Is(IsName("y")), FromConstraint(IsName("z")))
	reordered := NewConjunction(FromConstraint(IsName("z")), Var("x").Is(IsName("y")))

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, reordered))
	assert.False(t, Equal(a, NewDisjunction(a)))
	assert.True(t, Equal(NewNegation(a), NewNegation(b)))
	assert.True(t, Equal(NewDisjunction(a, b), NewDisjunction(b, a)))
	assert.False(t, Equal(Var("x").IntoConcept(), Var("x").Is(IsName("y"))))
	assert.True(t, Equal(nil, nil))
}

func TestReferences(t *testing.T) {
	p := NewConjunction(
		Var("x").Is(IsName("y")),
		NewNegation(FromConstraint(IsUnbound(HiddenVar()))),
		NewDisjunction(Var("x").Is(IsName("z"))),
	)

	var got []string
	for _, r := range References(p) {
		got = append(got, r.String())
	}
	assert.Equal(t, []string{"$x", "$y", "$_", "$x", "$z"}, got)
}

func TestNamedVariables(t *testing.T) {
	p := NewConjunction(
		Var("x").Is(IsName("y")),
		FromConstraint(IsUnbound(AnonymousVar())),
		Var("y").Is(IsName("x")),
	)

	vars := NamedVariables(p)
	require.Len(t, vars, 2)
	assert.Equal(t, "$x", vars[0].String())
	assert.Equal(t, "$y", vars[1].String())
}

// nestedConjunction wraps "is $x" in depth conjunctions.
func nestedConjunction(depth int) Pattern {
	var p Pattern = FromConstraint(IsName("x"))
	for i := 0; i < depth; i++ {
		p = NewConjunction(p)
	}
	return p
}

func TestProperty_NestingIndentsInnermostLine(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		depth := rapid.IntRange(1, 12).Draw(rt, "depth")

		out := nestedConjunction(depth).String()
		lines := strings.Split(out, "\n")

		require.Len(rt, lines, 2*depth+1)
		require.Equal(rt, strings.Repeat("  ", depth)+"is $x;", lines[depth])
		require.Equal(rt, "}", lines[len(lines)-1])
	})
}

func TestProperty_EqualMatchesRendering(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		names := rapid.SliceOfN(rapid.SampledFrom([]string{"a", "b", "c"}), 0, 6).Draw(rt, "names")
		other := rapid.SliceOfN(rapid.SampledFrom([]string{"a", "b", "c"}), 0, 6).Draw(rt, "other")

		build := func(ns []string) Conjunction {
			ps := make([]Pattern, len(ns))
			for i, n := range ns {
				ps[i] = FromConstraint(IsName(n))
			}
			return NewConjunction(ps...)
		}
		a, b := build(names), build(other)

		require.Equal(rt, a.String() == b.String(), Equal(a, b))
	})
}
