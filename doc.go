// Package arrayops is a small toolbox of pure numeric sequence and matrix
// operations over 32-bit signed integers.
//
// 🚀 What is arrayops?
//
//	A compact, zero-state utility library that brings together:
//		• Predicate checks: NoneMatch, SomeMatch, AllMatch
//		• Bounds-checked slicing & insertion: CopyValues, InsertValues
//		• Rearrangement & filtering: Replace, Rearrange, Filter, Distinct
//		• Ordered merging: MergeSortedArrays
//		• Dense matrix multiplication behind a strict validation gate
//
// ✨ Why choose arrayops?
//
//   - Predictable contracts – every failure is a package sentinel, matched
//     with errors.Is; no operation panics on caller input
//   - Pure Go – no cgo, no hidden deps
//   - Safe everywhere – all operations are pure; inputs are never mutated,
//     so concurrent use needs no locking
//
// Everything is organized under two subpackages:
//
//	intseq/ — operations over []int32 sequences
//	intmat/ — validation & multiplication for dense [][]int32 matrices
//
// Dive into the package docs and runnable examples for usage patterns.
//
//	go get github.com/katalvlaran/arrayops
package arrayops
