// Package validate cross-checks resolved header pairs against a trusted
// reference mapping.
//
// A pair is a mismatch when its symbol has a trusted header set that does
// not contain the resolved header. Mismatches are suppressed for symbols
// with legitimate overloads across headers, for white-listed symbols the
// index source is known to misattribute, and whenever the trusted set
// contains the imprecise truth header (<iosfwd> by default).
package validate
