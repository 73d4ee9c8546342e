// Package tables holds the curated exception data used while building the
// header map: symbols with legitimate multi-header overloads, symbols
// known to be misattributed by the index source, and the aliases that map
// internal forward-declaration headers back to their public header.
//
// Tables are immutable values. Callers start from Default (or an empty
// Tables) and layer a YAML override file on top:
//
//	std_prefix: "std::"
//	imprecise_truth_header: "<iosfwd>"
//	overloads: [swap, hash]
//	white_list: [cout, cerr]
//	forward_headers:
//	  stringfwd.h: string
//	  tuplefwd.h: tuple
package tables
