package intseq_test

import (
	"testing"

	"github.com/katalvlaran/arrayops/intseq"
	"github.com/stretchr/testify/assert"
)

// TestMergeSortedArrays_Basic verifies the interleaved merge of two sorted inputs.
func TestMergeSortedArrays_Basic(t *testing.T) {
	out, err := intseq.MergeSortedArrays([]int32{1, 3, 5}, []int32{2, 4, 6})
	assert.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 3, 4, 5, 6}, out, "full sorted multiset union")
}

// TestMergeSortedArrays_DuplicatesRetained pins the multiset property:
// duplicate values survive the merge.
func TestMergeSortedArrays_DuplicatesRetained(t *testing.T) {
	out, err := intseq.MergeSortedArrays([]int32{1, 2, 2}, []int32{2, 3})
	assert.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 2, 2, 3}, out, "duplicates are retained")
}

// TestMergeSortedArrays_NonStrictOrder accepts runs of equal values as sorted.
func TestMergeSortedArrays_NonStrictOrder(t *testing.T) {
	out, err := intseq.MergeSortedArrays([]int32{1, 1, 1}, []int32{0, 1})
	assert.NoError(t, err)
	assert.Equal(t, []int32{0, 1, 1, 1, 1}, out, "non-strict ascending is valid")
}

// TestMergeSortedArrays_Unsorted ensures either unsorted input trips the gate.
func TestMergeSortedArrays_Unsorted(t *testing.T) {
	_, err := intseq.MergeSortedArrays([]int32{2, 1}, []int32{1, 2})
	assert.ErrorIs(t, err, intseq.ErrNotSorted, "unsorted first input must error")

	_, err = intseq.MergeSortedArrays([]int32{1, 2}, []int32{3, 1})
	assert.ErrorIs(t, err, intseq.ErrNotSorted, "unsorted second input must error")
}

// TestMergeSortedArrays_Empty covers empty operands on either side.
func TestMergeSortedArrays_Empty(t *testing.T) {
	out, err := intseq.MergeSortedArrays(nil, []int32{1, 2})
	assert.NoError(t, err)
	assert.Equal(t, []int32{1, 2}, out, "empty left operand")

	out, err = intseq.MergeSortedArrays(nil, nil)
	assert.NoError(t, err)
	assert.Empty(t, out, "two empty operands merge to empty")
}
