package common

import (
	"strings"

	"github.com/roach88/tql/internal/token"
)

// Indent prefixes every line of an already-rendered string with one
// indentation unit. Applying it to a child rendering that was itself
// indented yields one more level, so nesting depth never has to be
// threaded through the tree.
func Indent(s string) string {
	lines := strings.Split(s, token.Newline)
	for i, line := range lines {
		lines[i] = token.IndentUnit + line
	}
	return strings.Join(lines, token.Newline)
}
