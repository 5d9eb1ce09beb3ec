package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReference_Rendering(t *testing.T) {
	assert.Equal(t, "$x", NamedReference("x").String())
	assert.Equal(t, "$_", AnonymousReference(Visible).String())
	assert.Equal(t, "$_", AnonymousReference(Invisible).String())
}

func TestReference_Predicates(t *testing.T) {
	tests := []struct {
		name    string
		ref     Reference
		isName  bool
		visible bool
	}{
		{"named", NamedReference("x"), true, true},
		{"anonymous visible", AnonymousReference(Visible), false, true},
		{"anonymous invisible", AnonymousReference(Invisible), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isName, tt.ref.IsName())
			assert.Equal(t, tt.visible, tt.ref.IsVisible())
		})
	}
}

func TestReference_Equality(t *testing.T) {
	assert.Equal(t, NamedReference("x"), NamedReference("x"))
	assert.NotEqual(t, NamedReference("x"), NamedReference("y"))
	assert.NotEqual(t, AnonymousReference(Visible), AnonymousReference(Invisible))
	assert.Equal(t, AnonymousReference(Invisible), AnonymousReference(Invisible))

	// Comparable: usable as a map key.
	seen := map[Reference]int{NamedReference("x"): 1}
	assert.Equal(t, 1, seen[NamedReference("x")])
}

func TestParseReference(t *testing.T) {
	ref, err := ParseReference("person-name_2")
	require.NoError(t, err)
	assert.Equal(t, "$person-name_2", ref.String())

	anon, err := ParseReference("_")
	require.NoError(t, err)
	assert.False(t, anon.IsName())
	assert.True(t, anon.IsVisible())

	for _, bad := range []string{"", "2x", "$x", "x y", "-x"} {
		t.Run(bad, func(t *testing.T) {
			_, err := ParseReference(bad)
			assert.Error(t, err)
		})
	}
}

func TestVariables(t *testing.T) {
	assert.Equal(t, "$x", Var("x").String())
	assert.Equal(t, "$_", AnonymousVar().String())
	assert.Equal(t, "$_", HiddenVar().String())
	assert.False(t, HiddenVar().Reference.IsVisible())

	_, err := ParseVar("")
	assert.Error(t, err)
}
