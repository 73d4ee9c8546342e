package common

import (
	"cmp"
	"maps"
	"slices"
)

// UnknownStr is the String() fallback for out-of-range enum values.
const UnknownStr = "unknown"

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	return slices.Sorted(maps.Keys(m))
}

// SetOf builds a membership set from the given values.
func SetOf[K comparable](values ...K) map[K]struct{} {
	set := make(map[K]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}

	return set
}
