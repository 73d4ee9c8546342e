package pipeline

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"std-header-map/internal/diagnostic"
	"std-header-map/internal/header"
	"std-header-map/internal/index"
	"std-header-map/internal/reference"
	"std-header-map/internal/tables"
	"std-header-map/internal/validate"
)

const symbolsYAML = `--- !Symbol
Name:            vector
Scope:           'std::'
Detail:
  IncludeHeader:   cppreference/vector
...
--- !Symbol
Name:            abs
Scope:           'std::'
Detail:
  IncludeHeader:   '<cstdlib>'
...
--- !Symbol
Name:            abs
Scope:           'std::'
Detail:
  IncludeHeader:   cppreference/cmath
...
--- !Symbol
Name:            basic_string
Scope:           'std::'
Detail:
  IncludeHeader:   cppreference/bits/stringfwd.h
...
--- !Symbol
Name:            map
Scope:           'std::'
Detail:
  IncludeHeader:   cppreference/bits/stl_map.h
...
--- !Symbol
Name:            list
Scope:           'std::'
Detail:
  IncludeHeader:   list
...
--- !Symbol
Name:            'operator=='
Scope:           'std::'
Detail:
  IncludeHeader:   '<vector>'
...
--- !Symbol
Name:            vector
Scope:           'boost::container::'
Detail:
  IncludeHeader:   '<boost/container/vector.hpp>'
...
--- !Symbol
Name:            chrono
Scope:           'std::'
SymInfo:
  Kind:            Namespace
...
--- !Symbol
Name:            hash
Scope:           'std::'
Detail:
  IncludeHeader:   cppreference/unordered_map
...
--- !Symbol
Name:            deque
Scope:           'std::'
Detail:
  IncludeHeader:   cppreference/vector
...
--- !Symbol
Name:            cout
Scope:           'std::'
Detail:
  IncludeHeader:   cppreference/ostream
...
--- !Symbol
Name:            streamoff
Scope:           'std::'
Detail:
  IncludeHeader:   cppreference/string
...
`

const truthTxt = `std::vector <vector>
std::hash <functional>
std::deque <deque>
std::cout <iostream>
std::streamoff <ios>,<iosfwd>
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestRunWithoutReference(t *testing.T) {
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer

	summary, err := Run(Options{
		IndexPath: writeFile(t, dir, "symbols.yaml", symbolsYAML),
		Tables:    tables.Default(),
	}, &stdout, &stderr, nil)
	require.NoError(t, err)

	assert.Equal(t, `std::abs <cmath>,<cstdlib>
std::basic_string <string>
std::cout <ostream>
std::deque <vector>
std::hash <unordered_map>
std::streamoff <string>
std::vector <vector>
`, stdout.String())

	assert.Equal(t, `No mapping for internal header cppreference/bits/stl_map.h std::map
IncludeHeader too short: list
`, stderr.String())

	assert.Equal(t, 13, summary.Records, spew.Sdump(summary))
	assert.Equal(t, 8, summary.Resolved)
	assert.Equal(t, 7, summary.Symbols)
	assert.Equal(t, 1, summary.Skipped[header.SkipOperator])
	assert.Equal(t, 1, summary.Skipped[header.SkipForeignScope])
	assert.Equal(t, 1, summary.Skipped[header.SkipNoHeader])
	assert.Equal(t, 1, summary.Skipped[header.SkipShortPath])
	assert.Equal(t, 1, summary.Skipped[header.SkipUnmappedInternal])
	assert.Zero(t, summary.Mismatches)
}

func TestRunWithReference(t *testing.T) {
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer

	summary, err := Run(Options{
		IndexPath:     writeFile(t, dir, "symbols.yaml", symbolsYAML),
		ReferencePath: writeFile(t, dir, "truth", truthTxt),
		Tables:        tables.Default(),
	}, &stdout, &stderr, nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stderr.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"Loaded 5 reference entries",
		"No mapping for internal header cppreference/bits/stl_map.h std::map",
		"IncludeHeader too short: list",
		"std::deque: <vector>. Truth: {<deque>}.",
	}, lines)

	assert.Equal(t, 1, summary.Mismatches)
	assert.Equal(t, 1, summary.Suppressed[validate.SuppressOverload])
	assert.Equal(t, 1, summary.Suppressed[validate.SuppressWhiteList])
	assert.Equal(t, 1, summary.Suppressed[validate.SuppressImpreciseTruth])

	// Validation never changes the emitted map.
	assert.Contains(t, stdout.String(), "std::deque <vector>\n")
	assert.Contains(t, stdout.String(), "std::hash <unordered_map>\n")
}

func TestRunOverloadRemoved(t *testing.T) {
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer

	_, err := Run(Options{
		IndexPath:     writeFile(t, dir, "symbols.yaml", symbolsYAML),
		ReferencePath: writeFile(t, dir, "truth", truthTxt),
		Tables:        tables.Default().Without("hash"),
	}, &stdout, &stderr, nil)
	require.NoError(t, err)

	assert.Contains(t, stderr.String(), "std::hash: <unordered_map>. Truth: {<functional>}.\n")
}

// A bare one-segment include such as "vector" is skipped as too short, so
// the vector record carries a two-segment path here.
func TestRunSingleRecordEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := `Name: vector
Scope: 'std::'
Detail:
  IncludeHeader: cppreference/vector
---
Name: map
Scope: 'std::'
Detail:
  IncludeHeader: bits/stl_map.h
`

	var stdout, stderr bytes.Buffer

	_, err := Run(Options{
		IndexPath: writeFile(t, dir, "symbols.yaml", input),
		Tables:    tables.Default(),
	}, &stdout, &stderr, nil)
	require.NoError(t, err)

	assert.Equal(t, "std::vector <vector>\n", stdout.String())
	assert.Equal(t, "No mapping for internal header bits/stl_map.h std::map\n", stderr.String())
}

func TestRunMalformedIndexProducesNoOutput(t *testing.T) {
	dir := t.TempDir()
	input := symbolsYAML + "--- !Symbol\nName: [broken\n"

	var stdout, stderr bytes.Buffer

	summary, err := Run(Options{
		IndexPath:     writeFile(t, dir, "symbols.yaml", input),
		ReferencePath: writeFile(t, dir, "truth", truthTxt),
		Tables:        tables.Default(),
	}, &stdout, &stderr, nil)
	require.Error(t, err)
	assert.Nil(t, summary)

	var inErr *index.InputError
	require.ErrorAs(t, err, &inErr)
	assert.Contains(t, err.Error(), "loading symbol index")
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunMalformedReference(t *testing.T) {
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer

	_, err := Run(Options{
		IndexPath:     writeFile(t, dir, "symbols.yaml", symbolsYAML),
		ReferencePath: writeFile(t, dir, "truth", "std::vector\n"),
		Tables:        tables.Default(),
	}, &stdout, &stderr, nil)
	require.Error(t, err)

	assert.True(t, errors.Is(err, reference.ErrMissingHeaders))
	assert.Empty(t, stdout.String())
}

func TestRunMissingIndex(t *testing.T) {
	var stdout bytes.Buffer

	_, err := Run(Options{IndexPath: filepath.Join(t.TempDir(), "nope.yaml")}, &stdout, &bytes.Buffer{}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Empty(t, stdout.String())
}

func TestRunLogsSummary(t *testing.T) {
	dir := t.TempDir()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := Run(Options{
		IndexPath:     writeFile(t, dir, "symbols.yaml", symbolsYAML),
		ReferencePath: writeFile(t, dir, "truth", truthTxt),
		Tables:        tables.Default(),
	}, &bytes.Buffer{}, &bytes.Buffer{}, logger)
	require.NoError(t, err)

	out := logs.String()
	assert.Contains(t, out, "symbol map written")
	assert.Contains(t, out, "summary.records=13")
	assert.Contains(t, out, "summary.symbols=7")
	assert.Contains(t, out, "mismatch suppressed")
	assert.Contains(t, out, "record skipped")
	assert.Contains(t, out, "summary.mismatches=1")
	assert.Contains(t, out, "severity=warning")
	assert.Contains(t, out, "[header_mismatch]")
}

func TestBuilderCountsReportedMismatches(t *testing.T) {
	records, err := index.Load(strings.NewReader(symbolsYAML))
	require.NoError(t, err)

	truth, err := reference.Parse(strings.NewReader(truthTxt))
	require.NoError(t, err)

	reporter := diagnostic.NewReporter(nil)

	b := NewBuilder(tables.Default().Without("hash", "cout"), truth, reporter, nil)
	for _, rec := range records {
		b.Add(rec)
	}

	_, summary := b.Result()

	assert.Equal(t, 3, summary.Mismatches)
	assert.Equal(t, reporter.Diagnostics().Count(diagnostic.CodeHeaderMismatch), summary.Mismatches)
	assert.Equal(t, 1, summary.Suppressed[validate.SuppressImpreciseTruth])
}

func TestBuilderIdempotent(t *testing.T) {
	records, err := index.Load(strings.NewReader(symbolsYAML))
	require.NoError(t, err)

	once := NewBuilder(tables.Default(), nil, diagnostic.NewReporter(nil), nil)
	for _, rec := range records {
		once.Add(rec)
	}

	twice := NewBuilder(tables.Default(), nil, diagnostic.NewReporter(nil), nil)
	for range 2 {
		for _, rec := range records {
			twice.Add(rec)
		}
	}

	a, _ := once.Result()
	b, summary := twice.Result()

	assert.True(t, a.Equal(b))
	assert.Equal(t, 26, summary.Records)
}
