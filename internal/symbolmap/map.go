package symbolmap

import (
	"bufio"
	"io"

	"std-header-map/internal/common"
	"std-header-map/internal/header"
)

// Map is the accumulated mapping from qualified symbol to header set.
type Map struct {
	entries map[string]header.Set
}

// New creates an empty Map.
func New() *Map {
	return &Map{entries: make(map[string]header.Set)}
}

// Add attributes tok to symbol and reports whether the pair was new.
func (m *Map) Add(symbol string, tok header.Token) bool {
	set, ok := m.entries[symbol]
	if !ok {
		set = header.NewSet()
		m.entries[symbol] = set
	}

	return set.Add(tok)
}

// AddPair is Add for a resolved pair.
func (m *Map) AddPair(p header.Pair) bool {
	return m.Add(p.Symbol, p.Header)
}

// Len returns the number of symbols.
func (m *Map) Len() int {
	return len(m.entries)
}

// Headers returns the header set for symbol.
func (m *Map) Headers(symbol string) (header.Set, bool) {
	set, ok := m.entries[symbol]
	return set, ok
}

// Symbols returns the symbols in lexicographic order.
func (m *Map) Symbols() []string {
	return common.SortedKeys(m.entries)
}

// Equal reports whether both maps hold the same symbols with the same sets.
func (m *Map) Equal(other *Map) bool {
	if m.Len() != other.Len() {
		return false
	}

	for symbol, set := range m.entries {
		o, ok := other.entries[symbol]
		if !ok || !set.Equal(o) {
			return false
		}
	}

	return true
}

// WriteTo writes one "<symbol> <h1>,<h2>" line per symbol.
func (m *Map) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)

	var n int64

	for _, symbol := range m.Symbols() {
		c, err := bw.WriteString(symbol + " " + m.entries[symbol].Join() + "\n")
		n += int64(c)

		if err != nil {
			return n, err
		}
	}

	return n, bw.Flush()
}
