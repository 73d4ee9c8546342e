package diagnostic

import (
	"fmt"
	"io"
	"strings"

	"std-header-map/internal/common"
)

// Diagnostic codes emitted by the pipeline.
const (
	CodeReferenceLoaded        = "reference_loaded"
	CodeIncludeTooShort        = "include_too_short"
	CodeUnmappedInternalHeader = "unmapped_internal_header"
	CodeHeaderMismatch         = "header_mismatch"
)

// Diagnostics holds all diagnostics produced during a run.
type Diagnostics struct {
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the exact line written to the diagnostic stream.
	Message string
	// Symbol is the qualified symbol this relates to (if any).
	Symbol string
	// Header is the raw or resolved header this relates to (if any).
	Header string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	default:
		return common.UnknownStr
	}
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, symbol, header string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Symbol:   symbol,
		Header:   header,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, symbol, header string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: DiagnosticInfo,
		Code:     code,
		Message:  message,
		Symbol:   symbol,
		Header:   header,
	})
}

// Count returns the number of diagnostics carrying the given code.
func (d Diagnostics) Count(code string) int {
	n := 0

	for _, list := range [][]Diagnostic{d.Warnings, d.Infos} {
		for _, diag := range list {
			if diag.Code == code {
				n++
			}
		}
	}

	return n
}

// All returns warnings followed by infos.
func (d Diagnostics) All() []Diagnostic {
	return append(append([]Diagnostic{}, d.Warnings...), d.Infos...)
}

// String returns a formatted diagnostic string including its code,
// for logs. The diagnostic stream itself carries only Message.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Symbol != "" {
		prefix = append(prefix, d.Symbol)
	}

	if d.Header != "" {
		prefix = append(prefix, d.Header)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

// Reporter records diagnostics and writes each message to w as it
// arrives, preserving emission order.
type Reporter struct {
	w     io.Writer
	diags Diagnostics
	err   error
}

// NewReporter creates a Reporter writing to w. A nil writer only records.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Info records and writes an info diagnostic.
func (r *Reporter) Info(code, message, symbol, header string) {
	r.diags.AddInfo(code, message, symbol, header)
	r.write(message)
}

// Warn records and writes a warning diagnostic.
func (r *Reporter) Warn(code, message, symbol, header string) {
	r.diags.AddWarning(code, message, symbol, header)
	r.write(message)
}

func (r *Reporter) write(message string) {
	if r.w == nil || r.err != nil {
		return
	}

	_, r.err = fmt.Fprintln(r.w, message)
}

// Diagnostics returns everything reported so far.
func (r *Reporter) Diagnostics() Diagnostics {
	return r.diags
}

// Err returns the first write error, if any.
func (r *Reporter) Err() error {
	return r.err
}
