package reference

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"std-header-map/internal/header"
)

// ErrMissingHeaders reports an entry with a symbol but no header list.
var ErrMissingHeaders = errors.New("entry has no header list")

// Mapping is the trusted symbol to header set mapping.
type Mapping map[string]header.Set

// Lookup returns the trusted set for a qualified symbol.
func (m Mapping) Lookup(symbol string) (header.Set, bool) {
	set, ok := m[symbol]
	return set, ok
}

// InputError reports a reference line that could not be parsed.
type InputError struct {
	Path string
	Line int
	Err  error
}

func (e *InputError) Error() string {
	loc := fmt.Sprintf("line %d", e.Line)
	if e.Path != "" {
		loc = e.Path + ":" + fmt.Sprint(e.Line)
	}

	return fmt.Sprintf("invalid reference mapping: %s: %v", loc, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// Parse reads one "<symbol> <header>,<header>..." entry per line. Blank
// lines are skipped and fields past the header list are ignored. A later
// entry for the same symbol replaces the earlier one.
func Parse(r io.Reader) (Mapping, error) {
	m := Mapping{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for line := 1; scanner.Scan(); line++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if len(fields) < 2 {
			return nil, &InputError{Line: line, Err: fmt.Errorf("%w: %q", ErrMissingHeaders, fields[0])}
		}

		set := header.NewSet()

		for h := range strings.SplitSeq(fields[1], ",") {
			if h != "" {
				set.Add(header.Token(h))
			}
		}

		m[fields[0]] = set
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan reference mapping: %w", err)
	}

	return m, nil
}

// LoadFile reads the mapping at path in full, closes it, then parses it.
func LoadFile(path string) (Mapping, error) {
	data, err := readAll(path)
	if err != nil {
		return nil, err
	}

	m, err := Parse(bytes.NewReader(data))
	if err != nil {
		var inErr *InputError
		if errors.As(err, &inErr) {
			inErr.Path = path
		}

		return nil, err
	}

	return m, nil
}

func readAll(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open reference mapping %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference mapping %s: %w", path, err)
	}

	return data, nil
}
