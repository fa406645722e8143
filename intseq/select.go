package intseq

import "sort"

// FindSecondMax returns the second-largest value of input under the legacy
// descending-scan rule: sort a copy descending, then return the first value
// strictly below the maximum at position 0. When every element equals the
// maximum, the scan falls through and the maximum itself is returned.
//
// Errors:
//   - ErrOutOfRange when input is empty (the maximum does not exist).
//
// Determinism: fixed descending order, fixed scan direction.
// Complexity: Time O(n log n), Space O(n) for the sorted copy.
func FindSecondMax(input []int32) (int32, error) {
	if len(input) == 0 {
		return 0, seqErrorf(opSecondMax, ErrOutOfRange)
	}

	sorted := make([]int32, len(input))
	copy(sorted, input)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] > sorted[j] })

	second := sorted[0]
	for i := 1; i < len(sorted); i++ {
		if sorted[i] < second {
			second = sorted[i]
			break
		}
	}

	return second, nil
}
