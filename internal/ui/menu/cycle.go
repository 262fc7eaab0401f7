package menu

import "slices"

// next returns the value after cur, wrapping to the first one.
// An unknown cur also yields the first value.
func next[T comparable](values []T, cur T) T {
	i := slices.Index(values, cur)
	return values[(i+1)%len(values)]
}

// previous returns the value before cur, wrapping to the last one
func previous[T comparable](values []T, cur T) T {
	i := slices.Index(values, cur)
	if i < 0 {
		return values[0]
	}
	return values[(i-1+len(values))%len(values)]
}
