// Package factorial maintains a lazily extended table of exact factorial
// values and answers factorial-membership queries by binary search.
//
// All entries are arbitrary-precision integers: for scans with nmax in the
// hundreds, candidate values reach hundreds of digits, so fixed-width
// arithmetic would silently corrupt results.
package factorial

import "math/big"

// Table is an append-only table of exact factorials where entry k equals k!.
// It is seeded with 0! and 1! (both 1) and grown on demand. A Table is not
// safe for concurrent use; each scan owns its own.
type Table struct {
	entries []*big.Int
}

// NewTable returns a table seeded with 0! = 1 and 1! = 1.
func NewTable() *Table {
	return &Table{entries: []*big.Int{big.NewInt(1), big.NewInt(1)}}
}

// Len returns the number of entries currently in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// ExtendUntil grows the table, appending entries[k-1] * k for increasing k,
// until the last entry is at least x. It is a no-op when the table already
// covers x, so repeated queries amortize to one multiplication per new entry
// over the table's lifetime.
func (t *Table) ExtendUntil(x *big.Int) {
	k := big.NewInt(0)
	for t.entries[len(t.entries)-1].Cmp(x) < 0 {
		k.SetInt64(int64(len(t.entries)))
		next := new(big.Int).Mul(t.entries[len(t.entries)-1], k)
		t.entries = append(t.entries, next)
	}
}

// IndexOf reports whether x equals k! for some k >= 0 and returns that k.
// For x < 1 it reports false without extending the table (factorials are
// all >= 1). Comparison is exact.
//
// Since 0! == 1! == 1, the value 1 matches two indices; IndexOf always
// returns the smallest, so x = 1 yields k = 0 regardless of how far the
// table has been extended.
func (t *Table) IndexOf(x *big.Int) (int, bool) {
	if x.Sign() <= 0 {
		return 0, false
	}
	t.ExtendUntil(x)
	lo, hi := 0, len(t.entries)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		switch t.entries[mid].Cmp(x) {
		case 0:
			for mid > 0 && t.entries[mid-1].Cmp(x) == 0 {
				mid--
			}
			return mid, true
		case -1:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return 0, false
}

// IndexOfInt is IndexOf for small nonnegative inputs, used by the
// classifiers when testing whether n itself is a factorial.
func (t *Table) IndexOfInt(x int) (int, bool) {
	return t.IndexOf(big.NewInt(int64(x)))
}
