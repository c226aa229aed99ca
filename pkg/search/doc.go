// Package search implements the brute-force enumeration for the two
// factorial relations:
//
//	PF (Permutation–Factorial): nPr = c!
//	BF (Binomial–Factorial):    C(n, r) = c!
//
// Each search scans all (n, r) with 0 <= n <= nmax and 0 <= r <= n, tests
// the exact combinatorial value against a factorial table, and classifies
// every match as trivial, PF_F3 (PF only), or exceptional. Exceptional
// records are the research output: solutions not explained by any known
// parametric family.
package search
