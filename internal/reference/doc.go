// Package reference loads a trusted symbol to header mapping used as
// ground truth when validating the generated map.
//
// The format is plain text with one entry per line:
//
//	std::vector <vector>
//	std::abs <cinttypes>,<valarray>,<cmath>,<cstdlib>,<complex>
package reference
