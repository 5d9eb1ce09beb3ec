package parser

import (
	"strconv"
	"strings"

	"github.com/roach88/tql/internal/common"
	"github.com/roach88/tql/internal/token"
)

// SyntaxError is a parse failure at a source position.
//
// The detailed form, used when QueryLine is set:
//
//	[TQL03] TypeQL Error: There is a syntax error at line 1:
//	match $
//	      ^
//	blah
//
// The brief form, used otherwise (e.g. an error at end of input):
//
//	[TQL04] TypeQL Error: There is a syntax error at line 1:
//	blah
type SyntaxError struct {
	Line               int     // 1-based
	CharPositionInLine int     // 0-based
	Message            string  // from the failing grammar rule
	QueryLine          *string // nil when the position has no captured line
}

// NewSyntaxError returns an error without a source line.
func NewSyntaxError(line, charPositionInLine int, message string) *SyntaxError {
	return &SyntaxError{Line: line, CharPositionInLine: charPositionInLine, Message: message}
}

// WithQueryLine returns a copy of e carrying the offending line's text.
func (e *SyntaxError) WithQueryLine(queryLine string) *SyntaxError {
	c := *e
	c.QueryLine = &queryLine
	return &c
}

// Pointer returns CharPositionInLine spaces followed by a caret. A column
// past the end of QueryLine pads further rather than failing.
func (e *SyntaxError) Pointer() string {
	n := e.CharPositionInLine
	if n < 0 {
		n = 0
	}
	return strings.Repeat(token.Space, n) + token.ErrorCursor
}

// Detailed reports whether Error renders the caret-annotated form.
func (e *SyntaxError) Detailed() bool {
	return e.QueryLine != nil
}

func (e *SyntaxError) Error() string {
	return e.Format().Message
}

// Format renders e through the detailed or brief template.
func (e *SyntaxError) Format() common.Message {
	line := strconv.Itoa(e.Line)
	if e.QueryLine != nil {
		return common.SyntaxErrorDetailed.Format(line, *e.QueryLine, e.Pointer(), e.Message)
	}
	return common.SyntaxErrorNoDetails.Format(line, e.Message)
}
