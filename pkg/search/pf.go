package search

import (
	"math/big"

	"github.com/mesh-intelligence/factseek/pkg/factorial"
	"github.com/mesh-intelligence/factseek/pkg/types"
)

// SearchPF enumerates all (n, r) with 0 <= n <= cfg.NMax and 0 <= r <= n,
// testing the falling permutation product P(n, r) = n*(n-1)*...*(n-r+1)
// for factorial membership. Records are appended in (n asc, r asc) order,
// so identical inputs always yield identical output.
//
// The product is updated incrementally: P(n, r) = P(n, r-1) * (n-r+1),
// seeded at P(n, 0) = 1. Values reach hundreds of digits well before
// nmax = 500; recomputing each product from scratch would be quadratically
// wasteful.
func SearchPF(facts *factorial.Table, cfg types.ScanConfig) []types.PFRecord {
	var out []types.PFRecord
	prod := new(big.Int)
	term := new(big.Int)
	for n := 0; n <= cfg.NMax; n++ {
		prod.SetInt64(1) // nP0
		for r := 0; r <= n; r++ {
			if r > 0 {
				term.SetInt64(int64(n - r + 1))
				prod.Mul(prod, term)
			}
			c, ok := facts.IndexOf(prod)
			if !ok {
				// Not a solution; expected for almost every pair.
				continue
			}
			class := ClassifyPF(facts, n, r, c)
			switch class {
			case types.ClassTrivial:
				if !cfg.IncludeTrivial {
					continue
				}
			case types.ClassPFF3:
				if !cfg.IncludePFF3 {
					continue
				}
			}
			out = append(out, types.PFRecord{N: n, R: r, C: c, Class: class})
		}
	}
	return out
}
