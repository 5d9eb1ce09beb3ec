package common

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Template is a positional message template. Text uses explicit argument
// indexes (%[1]s, %[2]s, ...) so the field order is fixed by the template,
// not by the call site.
type Template struct {
	Prefix string // "TQL"
	Code   int
	Text   string
}

// Message is a formatted template.
type Message struct {
	Code    string
	Message string
}

func (m Message) String() string {
	return m.Message
}

// Error templates.
var (
	SyntaxErrorDetailed = Template{
		Prefix: "TQL",
		Code:   3,
		Text:   "There is a syntax error at line %[1]s:\n%[2]s\n%[3]s\n%[4]s",
	}
	SyntaxErrorNoDetails = Template{
		Prefix: "TQL",
		Code:   4,
		Text:   "There is a syntax error at line %[1]s:\n%[2]s",
	}
)

// CodeString returns the template code, e.g. "TQL03".
func (t Template) CodeString() string {
	return fmt.Sprintf("%s%02d", t.Prefix, t.Code)
}

// Format fills the template with args in order. Each call uses its own
// printer over an empty catalog, so the template text is used as written.
func (t Template) Format(args ...string) Message {
	p := message.NewPrinter(language.English, message.Catalog(catalog.NewBuilder()))
	vals := make([]any, len(args))
	for i, a := range args {
		vals[i] = a
	}
	code := t.CodeString()
	return Message{
		Code:    code,
		Message: fmt.Sprintf("[%s] TypeQL Error: %s", code, p.Sprintf(t.Text, vals...)),
	}
}
