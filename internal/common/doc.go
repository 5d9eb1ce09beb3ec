// Package common holds the text helpers shared by the model packages:
// the indentation transform used by block serialization and the
// positional message templates used by error reporting.
//
// Nothing in common knows about patterns or queries; it imports no
// internal package.
package common
