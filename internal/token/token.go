// Package token defines the keywords and punctuation of the query language.
//
// Every rendered query is assembled from these tokens; nothing else in the
// module spells a keyword as a string literal.
package token

import "fmt"

// Aggregate is the reducing method of an aggregate query.
type Aggregate string

const (
	Count  Aggregate = "count"
	Max    Aggregate = "max"
	Min    Aggregate = "min"
	Mean   Aggregate = "mean"
	Median Aggregate = "median"
	Std    Aggregate = "std"
	Sum    Aggregate = "sum"
)

// Aggregates lists every aggregate method in declaration order.
var Aggregates = []Aggregate{Count, Max, Min, Mean, Median, Std, Sum}

func (a Aggregate) String() string {
	return string(a)
}

// TakesVariable reports whether the method reduces over a variable.
// Count is the only method that does not.
func (a Aggregate) TakesVariable() bool {
	return a != Count
}

// ParseAggregate maps a method keyword to its Aggregate.
func ParseAggregate(s string) (Aggregate, error) {
	for _, a := range Aggregates {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown aggregate method %q", s)
}

// Constraint is the keyword of a constraint.
type Constraint string

const (
	Is Constraint = "is"
)

func (c Constraint) String() string {
	return string(c)
}

// Command is a clause or pattern keyword.
type Command string

const (
	Match Command = "match"
	Group Command = "group"
	Get   Command = "get"
	Or    Command = "or"
	Not   Command = "not"
)

func (c Command) String() string {
	return string(c)
}

// Punctuation.
const (
	VarPrefix   = "$"
	Anonymous   = "_"
	Semicolon   = ";"
	Comma       = ","
	CurlyOpen   = "{"
	CurlyClose  = "}"
	Space       = " "
	Newline     = "\n"
	IndentUnit  = "  "
	ErrorCursor = "^"
)
