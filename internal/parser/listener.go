package parser

import (
	"errors"
	"strings"
)

// ErrorListener collects syntax errors reported against one source text.
// A scanner or grammar calls SyntaxError for each failure; Err returns
// them combined.
//
// ErrorListener is not safe for concurrent use; a parse runs on one
// goroutine.
type ErrorListener struct {
	lines  []string
	errors []*SyntaxError
}

// NewErrorListener returns a listener for source.
func NewErrorListener(source string) *ErrorListener {
	return &ErrorListener{lines: strings.Split(source, "\n")}
}

// SyntaxError records a failure at line (1-based) and column (0-based).
// The offending line's text is attached when line falls inside the
// source; otherwise the error takes the brief form.
func (l *ErrorListener) SyntaxError(line, charPositionInLine int, message string) *SyntaxError {
	e := NewSyntaxError(line, charPositionInLine, message)
	if line >= 1 && line <= len(l.lines) {
		e = e.WithQueryLine(strings.TrimSuffix(l.lines[line-1], "\r"))
	}
	l.errors = append(l.errors, e)
	return e
}

// HasErrors reports whether any error was recorded.
func (l *ErrorListener) HasErrors() bool {
	return len(l.errors) > 0
}

// Errors returns the recorded errors in report order.
func (l *ErrorListener) Errors() []*SyntaxError {
	out := make([]*SyntaxError, len(l.errors))
	copy(out, l.errors)
	return out
}

// Err returns nil when nothing was recorded, the single error when one
// was, and otherwise an errors.Join of all of them (rendered one per
// line). errors.As finds the first.
func (l *ErrorListener) Err() error {
	switch len(l.errors) {
	case 0:
		return nil
	case 1:
		return l.errors[0]
	default:
		errs := make([]error, len(l.errors))
		for i, e := range l.errors {
			errs[i] = e
		}
		return errors.Join(errs...)
	}
}
