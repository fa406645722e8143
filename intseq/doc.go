// Package intseq provides pure operations over []int32 sequences:
// predicate checks, bounds-checked slicing and insertion, element
// rearrangement, sorted merging, and deduplication.
//
// The intseq package guarantees:
//
//   - Purity: no function mutates its inputs; results are freshly allocated.
//   - Fail-fast contracts: invalid bounds or unsorted merge inputs are
//     reported through package sentinel errors, matched via errors.Is.
//   - No panics on caller-triggered conditions.
//
// Because every operation is a pure function over value data, calls are safe
// from any number of goroutines without locking.
//
// See the examples in this package for usage patterns.
package intseq
