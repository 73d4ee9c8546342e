package pipeline

import (
	"fmt"
	"io"
	"log/slog"

	"std-header-map/internal/diagnostic"
	"std-header-map/internal/index"
	"std-header-map/internal/reference"
	"std-header-map/internal/tables"
)

// Options configures a run.
type Options struct {
	// IndexPath is the YAML symbol index. Required.
	IndexPath string
	// ReferencePath is the optional trusted mapping.
	ReferencePath string
	// Tables are the exception tables.
	Tables tables.Tables
}

// Run loads the inputs, builds the map, writes it to stdout and writes
// diagnostics to stderr. Nothing is written to stdout when an input fails
// to load.
func Run(opts Options, stdout, stderr io.Writer, logger *slog.Logger) (*Summary, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	records, err := index.LoadFile(opts.IndexPath)
	if err != nil {
		return nil, fmt.Errorf("loading symbol index: %w", err)
	}

	logger.Debug("symbol index loaded", slog.String("path", opts.IndexPath), slog.Int("records", len(records)))

	var truth reference.Mapping

	if opts.ReferencePath != "" {
		truth, err = reference.LoadFile(opts.ReferencePath)
		if err != nil {
			return nil, fmt.Errorf("loading reference mapping: %w", err)
		}

		logger.Debug("reference mapping loaded", slog.String("path", opts.ReferencePath), slog.Int("entries", len(truth)))
	}

	reporter := diagnostic.NewReporter(stderr)

	b := NewBuilder(opts.Tables, truth, reporter, logger)
	for _, rec := range records {
		b.Add(rec)
	}

	result, summary := b.Result()

	if _, err := result.WriteTo(stdout); err != nil {
		return summary, fmt.Errorf("writing symbol map: %w", err)
	}

	if err := reporter.Err(); err != nil {
		return summary, fmt.Errorf("writing diagnostics: %w", err)
	}

	for _, d := range reporter.Diagnostics().All() {
		logger.Debug("diagnostic", slog.String("severity", d.Severity.String()), slog.String("detail", d.String()))
	}

	logger.Info("symbol map written", slog.Any("summary", summary))

	return summary, nil
}
