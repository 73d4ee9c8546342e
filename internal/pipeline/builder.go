package pipeline

import (
	"fmt"
	"log/slog"

	"std-header-map/internal/diagnostic"
	"std-header-map/internal/header"
	"std-header-map/internal/index"
	"std-header-map/internal/reference"
	"std-header-map/internal/symbolmap"
	"std-header-map/internal/tables"
	"std-header-map/internal/validate"
)

// Summary counts what a run did with its records.
type Summary struct {
	Records    int
	Resolved   int
	Skipped    map[header.SkipReason]int
	Mismatches int
	Suppressed map[validate.Suppression]int
	Symbols    int
}

func newSummary() *Summary {
	return &Summary{
		Skipped:    make(map[header.SkipReason]int),
		Suppressed: make(map[validate.Suppression]int),
	}
}

// LogValue implements slog.LogValuer.
func (s *Summary) LogValue() slog.Value {
	skipped := make([]slog.Attr, 0, len(s.Skipped))
	for reason := header.SkipNonStringName; reason <= header.SkipUnmappedInternal; reason++ {
		if n := s.Skipped[reason]; n > 0 {
			skipped = append(skipped, slog.Int(reason.String(), n))
		}
	}

	suppressed := make([]slog.Attr, 0, len(s.Suppressed))
	for reason := validate.SuppressOverload; reason <= validate.SuppressImpreciseTruth; reason++ {
		if n := s.Suppressed[reason]; n > 0 {
			suppressed = append(suppressed, slog.Int(reason.String(), n))
		}
	}

	return slog.GroupValue(
		slog.Int("records", s.Records),
		slog.Int("resolved", s.Resolved),
		slog.Attr{Key: "skipped", Value: slog.GroupValue(skipped...)},
		slog.Int("mismatches", s.Mismatches),
		slog.Attr{Key: "suppressed", Value: slog.GroupValue(suppressed...)},
		slog.Int("symbols", s.Symbols),
	)
}

// Builder resolves, aggregates and validates records into a symbol map.
type Builder struct {
	resolver  *header.Resolver
	validator *validate.Validator
	reporter  *diagnostic.Reporter
	logger    *slog.Logger
	result    *symbolmap.Map
	summary   *Summary
}

// NewBuilder creates a Builder. A nil truth disables validation. A nil
// reporter only records, a nil logger discards.
func NewBuilder(
	t tables.Tables,
	truth reference.Mapping,
	reporter *diagnostic.Reporter,
	logger *slog.Logger,
) *Builder {
	if reporter == nil {
		reporter = diagnostic.NewReporter(nil)
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	b := &Builder{
		resolver: header.NewResolver(t),
		reporter: reporter,
		logger:   logger,
		result:   symbolmap.New(),
		summary:  newSummary(),
	}

	if truth != nil {
		b.validator = validate.New(truth, t)
		reporter.Info(diagnostic.CodeReferenceLoaded,
			fmt.Sprintf("Loaded %d reference entries", b.validator.Len()), "", "")
	}

	return b
}

// Add processes one record.
func (b *Builder) Add(rec index.SymbolRecord) {
	b.summary.Records++

	res := b.resolver.Resolve(rec)
	if !res.OK() {
		b.skip(rec, res)
		return
	}

	b.summary.Resolved++
	b.result.AddPair(res.Pair)

	if b.validator == nil {
		return
	}

	mm, ok := b.validator.Check(res.Pair)
	if !ok {
		return
	}

	if !mm.Reported() {
		b.summary.Suppressed[mm.Suppressed]++
		b.logger.Debug("mismatch suppressed",
			slog.String("symbol", mm.Pair.Symbol),
			slog.String("header", string(mm.Pair.Header)),
			slog.String("reason", mm.Suppressed.String()))

		return
	}

	b.reporter.Warn(diagnostic.CodeHeaderMismatch, mm.String(), mm.Pair.Symbol, string(mm.Pair.Header))
}

func (b *Builder) skip(rec index.SymbolRecord, res header.Resolution) {
	b.summary.Skipped[res.Skip]++

	if !res.Skip.Reported() {
		b.logger.Debug("record skipped",
			slog.Int("doc", rec.Doc),
			slog.String("name", rec.Name),
			slog.String("kind", rec.Kind),
			slog.String("reason", res.Skip.String()))

		return
	}

	if res.Skip == header.SkipShortPath {
		b.reporter.Warn(diagnostic.CodeIncludeTooShort,
			"IncludeHeader too short: "+res.Pair.Raw, res.Pair.Symbol, res.Pair.Raw)

		return
	}

	b.reporter.Warn(diagnostic.CodeUnmappedInternalHeader,
		fmt.Sprintf("No mapping for internal header %s %s", res.Pair.Raw, res.Pair.Symbol),
		res.Pair.Symbol, res.Pair.Raw)
}

// Result returns the accumulated map and summary. Mismatches are counted
// from the reported diagnostics.
func (b *Builder) Result() (*symbolmap.Map, *Summary) {
	b.summary.Symbols = b.result.Len()
	b.summary.Mismatches = b.reporter.Diagnostics().Count(diagnostic.CodeHeaderMismatch)
	return b.result, b.summary
}
