package utils

import (
	"sort"
)

// GetKeys returns the sorted keys of a string-keyed map, handy for
// error messages that enumerate valid options.
func GetKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
