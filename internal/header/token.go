package header

import (
	"strings"

	"std-header-map/internal/common"
)

// Token is a canonical header name, always of the form <name>.
type Token string

// Wrap brackets a bare header name.
func Wrap(name string) Token {
	return Token("<" + name + ">")
}

// IsBracketed reports whether s already has the <...> form.
func IsBracketed(s string) bool {
	return strings.HasPrefix(s, "<")
}

// Set is a set of header tokens.
type Set map[Token]struct{}

// NewSet builds a set from tokens.
func NewSet(tokens ...Token) Set {
	return common.SetOf(tokens...)
}

// Add inserts t and reports whether it was new.
func (s Set) Add(t Token) bool {
	if _, ok := s[t]; ok {
		return false
	}

	s[t] = struct{}{}

	return true
}

// Has reports membership.
func (s Set) Has(t Token) bool {
	_, ok := s[t]
	return ok
}

// Sorted returns the tokens in lexicographic order.
func (s Set) Sorted() []Token {
	return common.SortedKeys(s)
}

// Join renders the sorted tokens separated by commas.
func (s Set) Join() string {
	tokens := s.Sorted()

	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = string(t)
	}

	return strings.Join(parts, ",")
}

// String renders the set as {<a>,<b>}.
func (s Set) String() string {
	return "{" + s.Join() + "}"
}

// Equal reports whether both sets hold the same tokens.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}

	for t := range s {
		if !other.Has(t) {
			return false
		}
	}

	return true
}
