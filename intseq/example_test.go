package intseq_test

import (
	"fmt"

	"github.com/katalvlaran/arrayops/intseq"
)

// ExampleRearrange demonstrates the canonical rearrangement scenario:
// negatives sorted ascending, then positives in original order reversed.
func ExampleRearrange() {
	out := intseq.Rearrange([]int32{3, -5, 4, -7, 2, 9})
	fmt.Println(out)
	// Output:
	// [-7 -5 9 2 4 3]
}

// ExampleMergeSortedArrays merges two ascending runs into one sorted slice.
func ExampleMergeSortedArrays() {
	out, err := intseq.MergeSortedArrays([]int32{1, 3, 5}, []int32{2, 4, 6})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(out)
	// Output:
	// [1 2 3 4 5 6]
}

// ExampleInsertValues splices a run of values into the middle of a sequence.
func ExampleInsertValues() {
	out, err := intseq.InsertValues([]int32{1, 2, 3}, 1, []int32{9, 9})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(out)
	// Output:
	// [1 9 9 2 3]
}

// ExampleDistinct keeps the first occurrence of every value.
func ExampleDistinct() {
	fmt.Println(intseq.Distinct([]int32{1, 2, 2, 3, 1}))
	// Output:
	// [1 2 3]
}
