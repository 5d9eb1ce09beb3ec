// Package parser holds the error model of the text front end.
//
// The grammar that turns query text into a tree lives outside this
// module. What it shares with this module is its failure report: a 1-based
// line, a 0-based column, the rule's message and, when the position maps to
// a captured line, that line's text. SyntaxError carries the report and
// renders it. ErrorListener collects reports against a source text and
// fills in the line text.
//
// Line and column conventions are fixed at the boundary and never
// adjusted here.
package parser
