package validate

import (
	"fmt"

	"std-header-map/internal/common"
	"std-header-map/internal/header"
	"std-header-map/internal/reference"
	"std-header-map/internal/tables"
)

// Suppression explains why a mismatch was not reported.
type Suppression int

const (
	SuppressNone Suppression = iota
	SuppressOverload
	SuppressWhiteList
	SuppressImpreciseTruth
)

// String returns a human-readable suppression name.
func (s Suppression) String() string {
	switch s {
	case SuppressNone:
		return "none"
	case SuppressOverload:
		return "overload"
	case SuppressWhiteList:
		return "white list"
	case SuppressImpreciseTruth:
		return "imprecise truth"
	default:
		return common.UnknownStr
	}
}

// Mismatch is a resolved header absent from the trusted set.
type Mismatch struct {
	Pair  header.Pair
	Truth header.Set
	// Suppressed is SuppressNone when the mismatch must be reported.
	Suppressed Suppression
}

// Reported reports whether the mismatch goes to the diagnostic stream.
func (m Mismatch) Reported() bool {
	return m.Suppressed == SuppressNone
}

// String renders "<symbol>: <header>. Truth: {<a>,<b>}."
func (m Mismatch) String() string {
	return fmt.Sprintf("%s: %s. Truth: %s.", m.Pair.Symbol, m.Pair.Header, m.Truth)
}

// Validator compares pairs against the reference mapping.
type Validator struct {
	truth  reference.Mapping
	tables tables.Tables
}

// New creates a Validator.
func New(truth reference.Mapping, t tables.Tables) *Validator {
	return &Validator{truth: truth, tables: t}
}

// Len returns the number of reference entries.
func (v *Validator) Len() int {
	return len(v.truth)
}

// Check returns the mismatch for p, if any. The returned mismatch may be
// suppressed; callers report only Reported ones.
func (v *Validator) Check(p header.Pair) (Mismatch, bool) {
	truth, ok := v.truth.Lookup(p.Symbol)
	if !ok || len(truth) == 0 || truth.Has(p.Header) {
		return Mismatch{}, false
	}

	return Mismatch{Pair: p, Truth: truth, Suppressed: v.suppression(p.Name, truth)}, true
}

func (v *Validator) suppression(name string, truth header.Set) Suppression {
	switch {
	case v.tables.IsOverload(name):
		return SuppressOverload
	case v.tables.IsWhiteListed(name):
		return SuppressWhiteList
	case truth.Has(header.Token(v.tables.ImpreciseTruthHeader)):
		return SuppressImpreciseTruth
	default:
		return SuppressNone
	}
}
