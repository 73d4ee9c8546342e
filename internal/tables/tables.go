package tables

import (
	"maps"

	"std-header-map/internal/common"
)

const (
	// DefaultStdPrefix is the qualification every retained symbol carries.
	DefaultStdPrefix = "std::"
	// DefaultImpreciseTruthHeader marks reference entries that are never
	// flagged: the index source is unreliable for I/O forwarding symbols.
	DefaultImpreciseTruthHeader = "<iosfwd>"
	// InternalDir is the path segment holding private implementation headers.
	InternalDir = "bits"
)

// Tables is the exception data injected into the resolver and validator.
type Tables struct {
	// StdPrefix is the required prefix of qualified symbol names.
	StdPrefix string
	// ImpreciseTruthHeader suppresses mismatches for any trusted set containing it.
	ImpreciseTruthHeader string
	// Overloads are bare names reachable from several headers.
	Overloads map[string]struct{}
	// WhiteList are bare names the index source is known to get wrong.
	WhiteList map[string]struct{}
	// ForwardHeaders maps an internal forward header file name to the
	// public header name, without angle brackets.
	ForwardHeaders map[string]string
}

// Default returns the curated tables.
func Default() Tables {
	return Tables{
		StdPrefix:            DefaultStdPrefix,
		ImpreciseTruthHeader: DefaultImpreciseTruthHeader,
		Overloads: common.SetOf(
			"allocator",
			"swap",
			"copy",
			"atan",
			"tan",
			"exp",
			"cosh",
			"sinh",
			"get",
			"pow",
			"sin",
			"find",
			"sqrt",
			"fabs",
			"move",
			"atan2",
			"end",
			"getline",
			"fill",
			"copy_backward",
			"hash",
			"make_error_code",
			"make_error_condition",
			"tuple_size",
			"tuple_element",
		),
		WhiteList: common.SetOf(
			"u16streampos", // <ios> or <iosfwd>, not <string>
			"u32streampos",
			"wstreampos",
			"fpos",  // <ios>, not <string>
			"wclog", // <iostream>, not <ostream>
			"cerr",
			"clog",
			"cin",
			"wcout",
			"wcin",
			"wcerr",
			"cout",
			"basic_stream",
			"basic_iostream",
		),
		ForwardHeaders: map[string]string{
			"stringfwd.h": "string",
			"localefwd.h": "locale",
			"memoryfwd.h": "memory",
			"tuplefwd.h":  "tuple",
		},
	}
}

// Empty returns tables with the default prefix and imprecise header but
// no exceptions or aliases.
func Empty() Tables {
	return Tables{
		StdPrefix:            DefaultStdPrefix,
		ImpreciseTruthHeader: DefaultImpreciseTruthHeader,
		Overloads:            map[string]struct{}{},
		WhiteList:            map[string]struct{}{},
		ForwardHeaders:       map[string]string{},
	}
}

// IsOverload reports whether name is a known multi-header overload.
func (t Tables) IsOverload(name string) bool {
	_, ok := t.Overloads[name]
	return ok
}

// IsWhiteListed reports whether name is a known index misattribution.
func (t Tables) IsWhiteListed(name string) bool {
	_, ok := t.WhiteList[name]
	return ok
}

// ForwardHeader returns the public header name for an internal forward
// header file name.
func (t Tables) ForwardHeader(file string) (string, bool) {
	name, ok := t.ForwardHeaders[file]
	return name, ok
}

// Clone returns a deep copy so overrides never alias the receiver's maps.
func (t Tables) Clone() Tables {
	out := t
	out.Overloads = cloneOrEmpty(t.Overloads)
	out.WhiteList = cloneOrEmpty(t.WhiteList)
	out.ForwardHeaders = cloneOrEmpty(t.ForwardHeaders)

	return out
}

// Without returns a copy with the given names removed from Overloads and
// WhiteList.
func (t Tables) Without(names ...string) Tables {
	out := t.Clone()
	for _, n := range names {
		delete(out.Overloads, n)
		delete(out.WhiteList, n)
	}

	return out
}

func cloneOrEmpty[M ~map[K]V, K comparable, V any](m M) M {
	if m == nil {
		return M{}
	}

	return maps.Clone(m)
}
