package search

import (
	"math/big"

	"github.com/mesh-intelligence/factseek/pkg/factorial"
	"github.com/mesh-intelligence/factseek/pkg/types"
)

// SearchBF enumerates all (n, r) with 0 <= n <= cfg.NMax and 0 <= r <= n,
// testing the exact binomial coefficient C(n, r) for factorial membership.
// Records are appended in (n asc, r asc) order.
//
// Coefficients are built row by row with Pascal's rule,
// C(n, r) = C(n-1, r-1) + C(n-1, r), keeping every cell an exact integer.
func SearchBF(facts *factorial.Table, cfg types.ScanConfig) []types.BFRecord {
	var out []types.BFRecord
	row := []*big.Int{big.NewInt(1)} // C(0, 0)
	for n := 0; n <= cfg.NMax; n++ {
		if n > 0 {
			next := make([]*big.Int, n+1)
			next[0] = big.NewInt(1)
			next[n] = big.NewInt(1)
			for r := 1; r < n; r++ {
				next[r] = new(big.Int).Add(row[r-1], row[r])
			}
			row = next
		}
		for r := 0; r <= n; r++ {
			c, ok := facts.IndexOf(row[r])
			if !ok {
				continue
			}
			class := ClassifyBF(facts, n, r)
			if class == types.ClassTrivial && !cfg.IncludeTrivial {
				continue
			}
			out = append(out, types.BFRecord{N: n, R: r, C: c, Class: class})
		}
	}
	return out
}
