package intseq

// CopyValues extracts the sub-sequence input[startInclusive:endExclusive]
// into a freshly allocated slice.
//
// Bounds contract (kept bit-for-bit from the legacy surface): the call fails
// with ErrInvalidBounds when startInclusive < 0 or when
// endExclusive > len(input)-1. The upper check is deliberately against
// len(input)-1, not len(input), so the final element can never be covered by
// the exclusive bound. Inverted ranges (startInclusive > endExclusive) also
// fail with ErrInvalidBounds.
//
// Complexity: Time O(endExclusive-startInclusive), Space same.
func CopyValues(input []int32, startInclusive, endExclusive int) ([]int32, error) {
	if startInclusive < 0 || endExclusive > len(input)-1 {
		return nil, seqErrorf(opCopyValues, ErrInvalidBounds)
	}
	if startInclusive > endExclusive {
		return nil, seqErrorf(opCopyValues, ErrInvalidBounds)
	}

	out := make([]int32, endExclusive-startInclusive)
	copy(out, input[startInclusive:endExclusive])

	return out, nil
}

// InsertValues returns a new slice equal to input with all of values spliced
// in at index startInclusive: input[0:startInclusive] ++ values ++
// input[startInclusive:].
//
// Bounds contract (kept from the legacy surface): fails with ErrInvalidBounds
// when startInclusive < 0 or startInclusive > len(input)-1. Insertion at the
// very end (startInclusive == len(input)) is therefore rejected, and an empty
// input rejects every index.
//
// Complexity: Time O(len(input)+len(values)), Space same.
func InsertValues(input []int32, startInclusive int, values []int32) ([]int32, error) {
	if startInclusive < 0 || startInclusive > len(input)-1 {
		return nil, seqErrorf(opInsertValues, ErrInvalidBounds)
	}

	out := make([]int32, 0, len(input)+len(values))
	out = append(out, input[:startInclusive]...)
	out = append(out, values...)
	out = append(out, input[startInclusive:]...)

	return out, nil
}
