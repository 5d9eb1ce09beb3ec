package pattern

import (
	"fmt"
	"regexp"

	"github.com/roach88/tql/internal/token"
)

// Visibility controls whether an anonymous variable is reported in
// answers. It never changes how the variable renders.
type Visibility int

const (
	Visible Visibility = iota
	Invisible
)

func (v Visibility) String() string {
	if v == Invisible {
		return "invisible"
	}
	return "visible"
}

// Reference is the identity of a query variable: either a name or an
// anonymous placeholder with a visibility.
//
// Reference is comparable; two named references are equal iff their names
// are, and anonymous references are equal iff their visibilities are.
type Reference struct {
	name       string
	visibility Visibility
}

var namePattern = regexp.MustCompile(`^[\p{L}_][\p{L}\p{N}_-]*$`)

// ValidName reports whether s can name a variable. The anonymous
// placeholder "_" is not a valid name.
func ValidName(s string) bool {
	return s != token.Anonymous && namePattern.MatchString(s)
}

// NamedReference returns the reference for name. The name is trusted; use
// ParseReference for input that has not been through the grammar.
func NamedReference(name string) Reference {
	return Reference{name: name, visibility: Visible}
}

// AnonymousReference returns an anonymous reference with the given visibility.
func AnonymousReference(v Visibility) Reference {
	return Reference{visibility: v}
}

// ParseReference validates name and returns its reference. "_" yields a
// visible anonymous reference.
func ParseReference(name string) (Reference, error) {
	if name == token.Anonymous {
		return AnonymousReference(Visible), nil
	}
	if !ValidName(name) {
		return Reference{}, fmt.Errorf("invalid variable name %q", name)
	}
	return NamedReference(name), nil
}

// IsName reports whether r is a named reference.
func (r Reference) IsName() bool {
	return r.name != ""
}

// IsVisible reports whether r is reported in answers. Only an invisible
// anonymous reference is not.
func (r Reference) IsVisible() bool {
	return r.IsName() || r.visibility == Visible
}

// Name returns the variable name, or "" for an anonymous reference.
func (r Reference) Name() string {
	return r.name
}

// String renders $name, or $_ for any anonymous reference.
func (r Reference) String() string {
	if r.IsName() {
		return token.VarPrefix + r.name
	}
	return token.VarPrefix + token.Anonymous
}
