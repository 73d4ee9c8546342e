package header

import (
	"strings"

	"std-header-map/internal/common"
	"std-header-map/internal/index"
	"std-header-map/internal/tables"
)

// operatorPrefix marks operator overloads, which are only distinguishable
// by USR and never by name.
const operatorPrefix = "operator"

// SkipReason explains why a record produced no pair.
type SkipReason int

const (
	SkipNone             SkipReason = iota
	SkipNonStringName               // Name missing or not a string
	SkipOperator                    // operator overload
	SkipForeignScope                // not under the standard prefix
	SkipNoHeader                    // namespaces and the like carry no header
	SkipShortPath                   // include path with fewer than two segments
	SkipUnmappedInternal            // internal header without a public alias
)

// String returns a human-readable reason.
func (s SkipReason) String() string {
	switch s {
	case SkipNone:
		return "none"
	case SkipNonStringName:
		return "non-string name"
	case SkipOperator:
		return "operator"
	case SkipForeignScope:
		return "foreign scope"
	case SkipNoHeader:
		return "no include header"
	case SkipShortPath:
		return "include path too short"
	case SkipUnmappedInternal:
		return "unmapped internal header"
	default:
		return common.UnknownStr
	}
}

// Reported reports whether the skip warrants a diagnostic line.
func (s SkipReason) Reported() bool {
	return s == SkipShortPath || s == SkipUnmappedInternal
}

// Pair is a resolved attribution of a qualified symbol to a header.
type Pair struct {
	// Symbol is the qualified name, e.g. "std::vector".
	Symbol string
	// Name is the bare name, e.g. "vector".
	Name string
	// Header is the canonical token.
	Header Token
	// Raw is the include header as it appeared in the index.
	Raw string
}

// Resolution is the outcome of resolving one record. Pair is only
// meaningful when Skip is SkipNone; Pair.Symbol and Pair.Raw are also set
// for reported skips.
type Resolution struct {
	Pair Pair
	Skip SkipReason
}

// OK reports whether the record resolved to a pair.
func (r Resolution) OK() bool {
	return r.Skip == SkipNone
}

// Resolver maps index records to header pairs.
type Resolver struct {
	tables tables.Tables
}

// NewResolver creates a Resolver using the given exception tables.
func NewResolver(t tables.Tables) *Resolver {
	return &Resolver{tables: t}
}

// Resolve applies the skip filters in order, then the resolution rule.
func (r *Resolver) Resolve(rec index.SymbolRecord) Resolution {
	if !rec.HasName {
		return Resolution{Skip: SkipNonStringName}
	}

	if strings.HasPrefix(rec.Name, operatorPrefix) {
		return Resolution{Skip: SkipOperator}
	}

	qualified := rec.Qualified()
	if !strings.HasPrefix(qualified, r.tables.StdPrefix) {
		return Resolution{Skip: SkipForeignScope}
	}

	if !rec.HasIncludeHeader {
		return Resolution{Skip: SkipNoHeader}
	}

	pair := Pair{Symbol: qualified, Name: rec.Name, Raw: rec.IncludeHeader}

	tok, skip := r.ResolveHeader(rec.IncludeHeader)
	if skip != SkipNone {
		return Resolution{Pair: pair, Skip: skip}
	}

	pair.Header = tok

	return Resolution{Pair: pair}
}

// ResolveHeader converts a raw include header to its canonical token.
func (r *Resolver) ResolveHeader(raw string) (Token, SkipReason) {
	if IsBracketed(raw) {
		return Token(raw), SkipNone
	}

	segments := strings.Split(raw, "/")
	if len(segments) < 2 {
		return "", SkipShortPath
	}

	last := segments[len(segments)-1]

	if segments[len(segments)-2] == tables.InternalDir {
		name, ok := r.tables.ForwardHeader(last)
		if !ok {
			return "", SkipUnmappedInternal
		}

		return Wrap(name), SkipNone
	}

	return Wrap(last), SkipNone
}
