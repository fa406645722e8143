package intseq

// divisibilityBase is the fixed modulus used by NoneMatch.
const divisibilityBase = 10

// NoneMatch reports whether no element of input is divisible by 10.
// An empty input vacuously satisfies the condition.
//
// Determinism: single left-to-right scan with short-circuit on first match.
// Complexity: Time O(n), Space O(1).
func NoneMatch(input []int32) bool {
	for _, v := range input {
		if v%divisibilityBase == 0 {
			return false
		}
	}

	return true
}

// SomeMatch reports whether at least one element of input satisfies pred.
// An empty input yields false.
//
// Determinism: single left-to-right scan with short-circuit on first match.
// Complexity: Time O(n), Space O(1).
func SomeMatch(input []int32, pred Predicate) bool {
	for _, v := range input {
		if pred(v) {
			return true
		}
	}

	return false
}

// AllMatch reports whether pred(fn(s)) holds for every string s in input.
// An empty input vacuously yields true.
//
// fn is applied exactly once per element up to the first failure.
// Complexity: Time O(n) applications of fn and pred, Space O(1).
func AllMatch(input []string, fn MapFunc, pred Predicate) bool {
	for _, s := range input {
		if !pred(fn(s)) {
			return false
		}
	}

	return true
}
