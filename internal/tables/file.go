package tables

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"std-header-map/internal/common"
)

// File is the on-disk override format. Empty fields leave the base
// tables untouched; list and map fields are merged into the base.
type File struct {
	StdPrefix            string            `yaml:"std_prefix"`
	ImpreciseTruthHeader string            `yaml:"imprecise_truth_header"`
	Overloads            []string          `yaml:"overloads"`
	WhiteList            []string          `yaml:"white_list"`
	ForwardHeaders       map[string]string `yaml:"forward_headers"`
}

// LoadFile loads and parses a YAML tables file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse tables YAML: %w", err)
	}

	return &f, nil
}

// Apply returns base with the file's overrides layered on top.
func (f *File) Apply(base Tables) (Tables, error) {
	out := base.Clone()
	if f == nil {
		return out, nil
	}

	if f.StdPrefix != "" {
		out.StdPrefix = f.StdPrefix
	}

	if f.ImpreciseTruthHeader != "" {
		if !isBracketed(f.ImpreciseTruthHeader) {
			return out, fmt.Errorf("imprecise_truth_header %q must be of the form <name>", f.ImpreciseTruthHeader)
		}

		out.ImpreciseTruthHeader = f.ImpreciseTruthHeader
	}

	for _, n := range f.Overloads {
		out.Overloads[n] = struct{}{}
	}

	for _, n := range f.WhiteList {
		out.WhiteList[n] = struct{}{}
	}

	for _, file := range common.SortedKeys(f.ForwardHeaders) {
		name := f.ForwardHeaders[file]
		if name == "" || isBracketed(name) {
			return out, fmt.Errorf("forward_headers[%q] = %q: want a bare header name", file, name)
		}

		out.ForwardHeaders[file] = name
	}

	return out, nil
}

func isBracketed(s string) bool {
	return len(s) > 2 && s[0] == '<' && s[len(s)-1] == '>'
}
