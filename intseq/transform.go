package intseq

import "sort"

// Replace returns a new slice of the same length where every even-indexed
// element is doubled and every odd-indexed element is negated.
//
// Determinism: fixed left-to-right order; input is never mutated.
// Complexity: Time O(n), Space O(n).
func Replace(input []int32) []int32 {
	out := make([]int32, len(input))
	for i, v := range input {
		if i%2 == 0 {
			out[i] = v * 2
		} else {
			out[i] = -v
		}
	}

	return out
}

// Rearrange splits input into its negative and strictly positive elements and
// returns: negatives sorted ascending, followed by the positives in their
// original relative order, reversed. Zero elements are dropped (neither
// negative nor positive).
//
// Example: {3, -5, 4, -7, 2, 9} → {-7, -5, 9, 2, 4, 3}.
//
// Complexity: Time O(n log n) for the negative sort, Space O(n).
func Rearrange(input []int32) []int32 {
	neg := make([]int32, 0, len(input))
	pos := make([]int32, 0, len(input))
	for _, v := range input {
		switch {
		case v < 0:
			neg = append(neg, v)
		case v > 0:
			pos = append(pos, v)
		}
	}

	sort.Slice(neg, func(i, j int) bool { return neg[i] < neg[j] })

	// Reverse positives in place; pos is a fresh slice, so input is untouched.
	for i, j := 0, len(pos)-1; i < j; i, j = i+1, j-1 {
		pos[i], pos[j] = pos[j], pos[i]
	}

	out := make([]int32, 0, len(neg)+len(pos))
	out = append(out, neg...)
	out = append(out, pos...)

	return out
}

// Filter returns a new slice containing only the non-negative elements of
// input, preserving their original relative order with no gaps.
//
// Complexity: Time O(n), Space O(n).
func Filter(input []int32) []int32 {
	out := make([]int32, 0, len(input))
	for _, v := range input {
		if v >= 0 {
			out = append(out, v)
		}
	}

	return out
}

// Distinct returns a new slice retaining only the first occurrence of each
// value, in original order.
//
// Complexity: Time O(n), Space O(n).
func Distinct(input []int32) []int32 {
	seen := make(map[int32]struct{}, len(input))
	out := make([]int32, 0, len(input))
	for _, v := range input {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}
