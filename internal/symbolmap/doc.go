// Package symbolmap accumulates the symbol to header set mapping and
// writes it out, one symbol per line, sorted by symbol:
//
//	std::abs <cmath>,<cstdlib>
//	std::vector <vector>
//
// Headers within a line are sorted too so output is reproducible.
package symbolmap
