package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorListener_NoErrors(t *testing.T) {
	l := NewErrorListener("match $x is $y;")
	assert.False(t, l.HasErrors())
	assert.NoError(t, l.Err())
}

func TestErrorListener_AttachesSourceLine(t *testing.T) {
	l := NewErrorListener("match\n$x is ;\n")
	e := l.SyntaxError(2, 6, "missing variable")

	require.NotNil(t, e.QueryLine)
	assert.Equal(t, "$x is ;", *e.QueryLine)

	err := l.Err()
	var se *SyntaxError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 2, se.Line)
	assert.Contains(t, err.Error(), "$x is ;\n      ^\nmissing variable")
}

func TestErrorListener_OutOfRangeLineIsBrief(t *testing.T) {
	l := NewErrorListener("match")
	e := l.SyntaxError(5, 0, "unexpected end of input")

	assert.Nil(t, e.QueryLine)
	assert.NotContains(t, l.Err().Error(), "^")
}

func TestErrorListener_StripsCarriageReturn(t *testing.T) {
	l := NewErrorListener("match\r\n$x;\r\n")
	e := l.SyntaxError(1, 0, "m")
	require.NotNil(t, e.QueryLine)
	assert.Equal(t, "match", *e.QueryLine)
}

func TestErrorListener_JoinsMultiple(t *testing.T) {
	l := NewErrorListener("a\nb")
	l.SyntaxError(1, 0, "first")
	l.SyntaxError(2, 0, "second")

	require.Len(t, l.Errors(), 2)
	msg := l.Err().Error()
	assert.Contains(t, msg, "first")
	assert.Contains(t, msg, "second")

	var se *SyntaxError
	require.True(t, errors.As(l.Err(), &se))
	assert.Equal(t, "first", se.Message)
}
