// Command std-header-map builds a mapping from C++ standard library
// symbols to the headers that declare them, from a clangd symbol index.
//
// Usage:
//
//	std-header-map symbols.yaml > mapping
//	std-header-map symbols.yaml truth > mapping
//
// The index is produced by running clangd's symbol builder over a dummy
// standard library with system header mapping off. When a second file is
// given, every resolved header is checked against that trusted
// "<symbol> <header>,<header>" mapping and disagreements are reported on
// stderr.
//
// Output, one line per symbol:
//
//	std::abs <cinttypes>,<cmath>,<complex>,<cstdlib>,<valarray>
//	std::string <string>
//	std::vector <vector>
package main

import (
	"os"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
