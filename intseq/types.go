// Package intseq: domain types shared by the sequence kernels.
package intseq

// Predicate reports whether a single element satisfies a condition.
// Implementations must be pure; kernels may invoke them in any element order
// that preserves short-circuit semantics.
type Predicate func(v int32) bool

// MapFunc converts a string element into an int32 prior to predicate
// evaluation (see AllMatch). Implementations must be pure.
type MapFunc func(s string) int32
