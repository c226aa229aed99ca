package search

import (
	"github.com/mesh-intelligence/factseek/pkg/factorial"
	"github.com/mesh-intelligence/factseek/pkg/types"
)

// isPFTrivial reports whether a PF solution (n, r) belongs to a known
// boundary family: r in {0, n-1, n}, or r = 1 with n itself a factorial.
// The factorial query is on n, not on the permutation product.
func isPFTrivial(facts *factorial.Table, n, r int) bool {
	if r == 0 || r == n-1 || r == n {
		return true
	}
	if r == 1 {
		_, ok := facts.IndexOfInt(n)
		return ok
	}
	return false
}

// isPFFamilyF3 reports whether (n, r, c) is a member of the infinite family
// (t!, t!-t, t!-1) for t >= 3.
func isPFFamilyF3(facts *factorial.Table, n, r, c int) bool {
	t, ok := facts.IndexOfInt(n)
	if !ok || t < 3 {
		return false
	}
	return r == n-t && c == n-1
}

// isBFTrivial reports whether a BF solution (n, r) belongs to a known
// boundary family: r in {0, n}, or r in {1, n-1} with n itself a factorial.
func isBFTrivial(facts *factorial.Table, n, r int) bool {
	if r == 0 || r == n {
		return true
	}
	if r == 1 || r == n-1 {
		_, ok := facts.IndexOfInt(n)
		return ok
	}
	return false
}

// ClassifyPF assigns a confirmed PF solution to exactly one class, checked
// in fixed priority order: trivial, then PF_F3, then exceptional.
func ClassifyPF(facts *factorial.Table, n, r, c int) string {
	if isPFTrivial(facts, n, r) {
		return types.ClassTrivial
	}
	if isPFFamilyF3(facts, n, r, c) {
		return types.ClassPFF3
	}
	return types.ClassExceptional
}

// ClassifyBF assigns a confirmed BF solution to exactly one class:
// trivial, else exceptional.
func ClassifyBF(facts *factorial.Table, n, r int) string {
	if isBFTrivial(facts, n, r) {
		return types.ClassTrivial
	}
	return types.ClassExceptional
}
