package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSyntaxError_Detailed(t *testing.T) {
	e := NewSyntaxError(1, 6, "blah").WithQueryLine("match $")

	require.True(t, e.Detailed())
	assert.Equal(t, "      ^", e.Pointer())

	msg := e.Error()
	assert.Equal(t,
		"[TQL03] TypeQL Error: There is a syntax error at line 1:\nmatch $\n      ^\nblah",
		msg)

	// The pieces appear in order: line number, source, pointer, message.
	iLine := strings.Index(msg, "line 1")
	iSource := strings.Index(msg, "\nmatch $\n")
	iPointer := strings.Index(msg, "\n      ^\n")
	iMessage := strings.LastIndex(msg, "blah")
	assert.True(t, iLine < iSource && iSource < iPointer && iPointer < iMessage)
}

func TestSyntaxError_Brief(t *testing.T) {
	e := NewSyntaxError(3, 0, "unexpected end of input")

	require.False(t, e.Detailed())
	msg := e.Error()
	assert.Contains(t, msg, "3")
	assert.Contains(t, msg, "unexpected end of input")
	assert.NotContains(t, msg, "^")
	assert.Equal(t, "TQL04", e.Format().Code)
}

func TestSyntaxError_ColumnPastLineEnd(t *testing.T) {
	e := NewSyntaxError(1, 20, "oops").WithQueryLine("match")

	assert.NotPanics(t, func() { _ = e.Error() })
	assert.Equal(t, strings.Repeat(" ", 20)+"^", e.Pointer())
}

func TestSyntaxError_WithQueryLineCopies(t *testing.T) {
	brief := NewSyntaxError(2, 1, "x")
	detailed := brief.WithQueryLine("ab")

	assert.Nil(t, brief.QueryLine)
	require.NotNil(t, detailed.QueryLine)
	assert.Equal(t, "ab", *detailed.QueryLine)
}

func TestProperty_PointerAlignsUnderColumn(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		line := rapid.StringMatching(`[a-z $;]{0,40}`).Draw(rt, "line")
		col := rapid.IntRange(0, 60).Draw(rt, "col")

		e := NewSyntaxError(1, col, "m").WithQueryLine(line)
		pointer := e.Pointer()

		require.Len(rt, pointer, col+1)
		require.Equal(rt, col, strings.Index(pointer, "^"))
		require.Contains(rt, e.Error(), "\n"+line+"\n"+pointer+"\nm")
	})
}
