// Package intseq: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the intseq
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on caller-triggered conditions.

package intseq

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "intseq: ..." for consistency and to allow
// easy grepping across logs. Sentinels are wrapped exactly once, at the
// operation boundary, with an operation tag; callers still match via
// errors.Is.

var (
	// ErrInvalidBounds is returned when a slice or insertion index is outside
	// the bounds an operation accepts (CopyValues, InsertValues).
	ErrInvalidBounds = errors.New("intseq: bounds out of range")

	// ErrNotSorted is returned by MergeSortedArrays when either input is not
	// sorted in non-strict ascending order.
	ErrNotSorted = errors.New("intseq: arrays are not sorted ascending")

	// ErrOutOfRange indicates that an element access was required on an input
	// that has no such element (FindSecondMax on an empty sequence).
	ErrOutOfRange = errors.New("intseq: index out of range")
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opCopyValues   = "CopyValues"
	opInsertValues = "InsertValues"
	opSecondMax    = "FindSecondMax"
	opMergeSorted  = "MergeSortedArrays"
)

// seqErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil; the wrapper keeps a stable "Op: underlying" shape
// so errors.Is/As continue to match at call sites.
func seqErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
