// Package pattern defines the typed tree of a match clause: variable
// references, constraints and the patterns that combine them.
//
// Pattern and Constraint are sealed interfaces using the marker method
// pattern, as in a closed sum type. Only types in this package implement
// them, so every consumer (rendering, Equal, References) is an exhaustive
// type switch and a new kind is a local, compiler-visible change.
//
// All values are immutable after construction. Constructors copy their
// input slices and accessors return copies, so a tree can be shared
// between goroutines and rendered concurrently without coordination.
//
// Rendering is canonical: String() on any node yields the exact text the
// grammar accepts, and composing child renderings yields the parent's.
// Block indentation is applied as a text transform on the already-rendered
// child (see common.Indent), never by threading a depth counter.
package pattern
