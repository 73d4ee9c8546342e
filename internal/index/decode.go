package index

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"gopkg.in/yaml.v3"
)

// Document tags that carry a symbol. Any other explicit tag (!Refs,
// !Relations, ...) is a structural record.
const symbolTag = "!Symbol"

// Decode lazily yields the records of a YAML stream. The sequence stops
// after the first error, which is always an *InputError.
func Decode(r io.Reader) iter.Seq2[SymbolRecord, error] {
	return func(yield func(SymbolRecord, error) bool) {
		dec := yaml.NewDecoder(r)

		for doc := 1; ; doc++ {
			var node yaml.Node

			err := dec.Decode(&node)
			if errors.Is(err, io.EOF) {
				return
			}

			if err != nil {
				yield(SymbolRecord{}, &InputError{Doc: doc, Err: err})
				return
			}

			rec, err := recordFromNode(&node, doc)
			if err != nil {
				yield(SymbolRecord{}, err)
				return
			}

			if !yield(rec, nil) {
				return
			}
		}
	}
}

// Load decodes every record from r. Any malformed document fails the
// whole load.
func Load(r io.Reader) ([]SymbolRecord, error) {
	var records []SymbolRecord

	for rec, err := range Decode(r) {
		if err != nil {
			return nil, err
		}

		records = append(records, rec)
	}

	return records, nil
}

// LoadFile reads the index at path in full, closes it, then decodes it.
func LoadFile(path string) ([]SymbolRecord, error) {
	data, err := readAll(path)
	if err != nil {
		return nil, err
	}

	records, err := Load(bytes.NewReader(data))
	if err != nil {
		var inErr *InputError
		if errors.As(err, &inErr) {
			inErr.Path = path
		}

		return nil, err
	}

	return records, nil
}

func readAll(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open symbol index %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read symbol index %s: %w", path, err)
	}

	return data, nil
}

// recordFromNode validates one document and extracts the recognized fields.
func recordFromNode(node *yaml.Node, doc int) (SymbolRecord, error) {
	rec := SymbolRecord{Doc: doc}

	root := node
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return rec, nil
		}

		root = root.Content[0]
	}

	if root.Kind != yaml.MappingNode || !isSymbolTag(root.Tag) {
		return rec, nil
	}

	for key, value := range mappingPairs(root) {
		var err error

		switch key {
		case "Name":
			rec.Name, rec.HasName = stringValue(value)
		case "Scope":
			rec.Scope, err = scalarValue(value)
		case "SymInfo":
			rec.Kind, err = nestedScalar(value, "Kind")
		case "Detail":
			rec.IncludeHeader, err = nestedScalar(value, "IncludeHeader")
			rec.HasIncludeHeader = rec.IncludeHeader != ""
		}

		if err != nil {
			return SymbolRecord{}, &InputError{
				Doc:  doc,
				Line: value.Line,
				Err:  fmt.Errorf("field %s: %w", key, err),
			}
		}
	}

	return rec, nil
}

func isSymbolTag(tag string) bool {
	return tag == "" || tag == "!!map" || tag == symbolTag
}

// mappingPairs yields the key/value pairs of a mapping node. Non-scalar
// keys are skipped.
func mappingPairs(node *yaml.Node) iter.Seq2[string, *yaml.Node] {
	return func(yield func(string, *yaml.Node) bool) {
		for i := 0; i+1 < len(node.Content); i += 2 {
			k := node.Content[i]
			if k.Kind != yaml.ScalarNode {
				continue
			}

			if !yield(k.Value, node.Content[i+1]) {
				return
			}
		}
	}
}

// resolveAlias follows an alias to its anchored node.
func resolveAlias(node *yaml.Node) *yaml.Node {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		return node.Alias
	}

	return node
}

// stringValue returns the text of a string scalar. Any other shape
// reports false.
func stringValue(node *yaml.Node) (string, bool) {
	node = resolveAlias(node)
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!str" {
		return "", false
	}

	return node.Value, true
}

// scalarValue returns the text of a scalar; null yields "".
func scalarValue(node *yaml.Node) (string, error) {
	node = resolveAlias(node)

	if node.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("%w: expected a scalar", ErrMalformedField)
	}

	if node.ShortTag() == "!!null" {
		return "", nil
	}

	return node.Value, nil
}

// nestedScalar returns the named scalar of a mapping node. A null or
// missing parent, or a missing child, yields "".
func nestedScalar(node *yaml.Node, field string) (string, error) {
	node = resolveAlias(node)

	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return "", nil
		}

		return "", fmt.Errorf("%w: expected a mapping", ErrMalformedField)
	case yaml.MappingNode:
	default:
		return "", fmt.Errorf("%w: expected a mapping", ErrMalformedField)
	}

	for key, value := range mappingPairs(node) {
		if key != field {
			continue
		}

		v, err := scalarValue(value)
		if err != nil {
			return "", fmt.Errorf("%s: %w", field, err)
		}

		return v, nil
	}

	return "", nil
}
