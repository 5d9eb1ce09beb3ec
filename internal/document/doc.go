// Package document loads query documents into query trees and writes
// query trees back out as documents.
//
// A document is the structured form of a query, written in YAML, JSON, CUE
// or TOML:
//
//	match:
//	  - var: x        # $x is $y
//	    is: y
//	  - is: z         # is $z
//	  - and: [...]    # { ...; }
//	  - or: [[...], [...]]
//	  - not: [...]
//	get: [x]
//	group: x
//	aggregate:
//	  method: sum     # count takes no var; every other method takes one
//	  var: y
//
// Documents go through the query builder, so anything that loads is a
// well-formed tree. Every decode failure is a *parser.SyntaxError located
// at the offending node, with the source line attached, so the reporter
// renders a caret under the exact column.
//
// Names are NFC normalized at this boundary; "_" is a visible anonymous
// variable. Invisible anonymous variables have no document form and are
// written as "_".
package document
