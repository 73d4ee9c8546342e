// Package pipeline wires the header map stages together:
//
//  1. Load the symbol index and, optionally, the reference mapping.
//  2. Resolve each record to a (symbol, header) pair.
//  3. Aggregate pairs into the symbol map.
//  4. Validate each pair against the reference, reporting mismatches.
//  5. Emit the sorted map.
//
// Both inputs are fully loaded before any record is processed, so a
// malformed input fails the run without producing output.
package pipeline
