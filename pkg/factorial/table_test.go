package factorial

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexOf_NonPositive(t *testing.T) {
	facts := NewTable()

	for _, x := range []int64{0, -1, -120} {
		_, ok := facts.IndexOf(big.NewInt(x))
		assert.False(t, ok, "x=%d must not be a factorial", x)
	}
}

func TestIndexOf_ExactFactorials(t *testing.T) {
	facts := NewTable()

	// k! for k = 2..30, computed independently of the table.
	for k := int64(2); k <= 30; k++ {
		want := new(big.Int).MulRange(1, k)
		got, ok := facts.IndexOf(want)
		require.True(t, ok, "%d! must be found", k)
		assert.Equal(t, int(k), got)
	}
}

func TestIndexOf_OneMapsToSmallestIndex(t *testing.T) {
	facts := NewTable()

	// Extend far first: the answer for x=1 must not depend on table length.
	facts.ExtendUntil(new(big.Int).MulRange(1, 20))

	got, ok := facts.IndexOf(big.NewInt(1))
	require.True(t, ok)
	assert.Equal(t, 0, got, "the 0!/1! tie resolves to index 0")
}

func TestIndexOf_NoFalsePositives(t *testing.T) {
	facts := NewTable()
	one := big.NewInt(1)

	// Values adjacent to a known factorial must not match.
	for k := int64(3); k <= 25; k++ {
		f := new(big.Int).MulRange(1, k)
		below := new(big.Int).Sub(f, one)
		above := new(big.Int).Add(f, one)

		_, ok := facts.IndexOf(below)
		assert.False(t, ok, "%d!-1 must not be a factorial", k)
		_, ok = facts.IndexOf(above)
		assert.False(t, ok, "%d!+1 must not be a factorial", k)
	}
}

func TestExtendUntil_MonotoneAndIdempotent(t *testing.T) {
	facts := NewTable()
	bound := new(big.Int).MulRange(1, 15)

	facts.ExtendUntil(bound)
	lenOnce := facts.Len()

	facts.ExtendUntil(bound)
	assert.Equal(t, lenOnce, facts.Len(), "re-extending to the same bound must not grow the table")

	// Entries are non-decreasing (strictly increasing from index 2 on).
	for k := 1; k < facts.Len(); k++ {
		prev := facts.entries[k-1]
		cur := facts.entries[k]
		assert.LessOrEqual(t, prev.Cmp(cur), 0, "table must be non-decreasing at %d", k)
		if k >= 2 {
			assert.Equal(t, -1, prev.Cmp(cur), "table must be strictly increasing at %d", k)
		}
	}
}

func TestIndexOfInt(t *testing.T) {
	facts := NewTable()

	k, ok := facts.IndexOfInt(720)
	require.True(t, ok)
	assert.Equal(t, 6, k)

	_, ok = facts.IndexOfInt(7)
	assert.False(t, ok)
}
