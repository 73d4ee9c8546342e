// Package index decodes a symbol index: a multi-document YAML stream with
// one symbol per document, as written by clangd's index dumper.
//
// Only the fields the header map needs are read:
//
//	--- !Symbol
//	Name:            vector
//	Scope:           'std::'
//	SymInfo:
//	  Kind:          Class
//	Detail:
//	  IncludeHeader: '<vector>'
//	...
//
// Every field is optional. Presence is recorded explicitly on the
// SymbolRecord at decode time so downstream code never probes the raw
// document. A document that is not well-formed YAML fails the whole load.
package index
