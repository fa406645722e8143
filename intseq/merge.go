package intseq

import "sort"

// MergeSortedArrays merges two ascending-sorted slices into a single sorted
// slice containing every element of both (stable multiset union: duplicates
// are retained).
//
// Errors:
//   - ErrNotSorted unless both inputs satisfy input[i] <= input[i+1] for all
//     adjacent pairs (non-strict ascending order; empty and single-element
//     inputs are trivially sorted).
//
// Complexity: Time O((n+m) log(n+m)), Space O(n+m).
func MergeSortedArrays(input, input2 []int32) ([]int32, error) {
	if !isSorted(input) || !isSorted(input2) {
		return nil, seqErrorf(opMergeSorted, ErrNotSorted)
	}

	out := make([]int32, 0, len(input)+len(input2))
	out = append(out, input...)
	out = append(out, input2...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// isSorted reports whether input is in non-strict ascending order.
// Central sortedness gate for merge-style operations; returns a plain bool so
// the facade decides which sentinel to raise.
func isSorted(input []int32) bool {
	for i := 0; i+1 < len(input); i++ {
		if input[i] > input[i+1] {
			return false
		}
	}

	return true
}
