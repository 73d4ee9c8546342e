package index

import (
	"errors"
	"fmt"
)

// SymbolRecord is one decoded index entry.
type SymbolRecord struct {
	// Name is the unqualified symbol name. Valid only when HasName is set.
	Name string
	// HasName is true when the document's Name is a YAML string.
	HasName bool
	// Scope is the qualification prefix, e.g. "std::". Empty when absent.
	Scope string
	// IncludeHeader is either a bracketed token or a slash-delimited path.
	IncludeHeader string
	// HasIncludeHeader is true when Detail.IncludeHeader is a non-empty value.
	HasIncludeHeader bool
	// Kind is SymInfo.Kind when present.
	Kind string
	// Doc is the 1-based position of the document in the stream.
	Doc int
}

// Qualified returns Scope + Name.
func (r SymbolRecord) Qualified() string {
	return r.Scope + r.Name
}

// ErrMalformedField reports a recognized field whose YAML shape cannot hold
// its value.
var ErrMalformedField = errors.New("malformed field")

// InputError reports an index document that could not be decoded.
type InputError struct {
	// Path is the index file, if known.
	Path string
	// Doc is the 1-based document position.
	Doc int
	// Line is the source line, if known.
	Line int
	Err  error
}

func (e *InputError) Error() string {
	loc := fmt.Sprintf("document %d", e.Doc)
	if e.Line > 0 {
		loc = fmt.Sprintf("%s (line %d)", loc, e.Line)
	}

	if e.Path != "" {
		loc = e.Path + ": " + loc
	}

	return fmt.Sprintf("invalid symbol index: %s: %v", loc, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}
