// SPDX-License-Identifier: MIT
// Package intmat: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the intmat
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on caller-triggered conditions.

package intmat

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "intmat: ..." for consistency and to allow
// easy grepping across logs. Sentinels are wrapped exactly once with an
// operation tag at the public boundary; callers match via errors.Is.

var (
	// ErrDimensionMismatch indicates operand shapes unfit for multiplication:
	// a zero-row matrix, or a failed inner-dimension gate.
	ErrDimensionMismatch = errors.New("intmat: dimension mismatch")

	// ErrNilValue indicates the sentinel-zero check fired: a literal 0 entry
	// is treated as a missing element and rejects the whole matrix.
	ErrNilValue = errors.New("intmat: nil value in matrix")

	// ErrOutOfRange indicates that an element access left the bounds of an
	// operand during multiplication (see Multiply's summation contract).
	ErrOutOfRange = errors.New("intmat: index out of range")
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opValidate = "ValidateForMultiplication"
	opMultiply = "Multiply"
)

// matErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil; the wrapper keeps a stable "Op: underlying" shape
// so errors.Is/As continue to match at call sites.
func matErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
