package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/factseek/pkg/factorial"
	"github.com/mesh-intelligence/factseek/pkg/types"
)

func bfConfig(nMax int) types.ScanConfig {
	return types.ScanConfig{
		Mode:           types.ModeBF,
		NMax:           nMax,
		IncludeTrivial: true,
		IncludePFF3:    true,
	}
}

func TestSearchBF_SmallRange(t *testing.T) {
	got := SearchBF(factorial.NewTable(), bfConfig(6))

	// Every solution for n <= 6, verified by hand. C(n,0) = C(n,n) = 1
	// always matches with c = 0 under the smallest-index convention.
	want := []types.BFRecord{
		{N: 0, R: 0, C: 0, Class: types.ClassTrivial},
		{N: 1, R: 0, C: 0, Class: types.ClassTrivial},
		{N: 1, R: 1, C: 0, Class: types.ClassTrivial},
		{N: 2, R: 0, C: 0, Class: types.ClassTrivial},
		{N: 2, R: 1, C: 2, Class: types.ClassTrivial},
		{N: 2, R: 2, C: 0, Class: types.ClassTrivial},
		{N: 3, R: 0, C: 0, Class: types.ClassTrivial},
		{N: 3, R: 3, C: 0, Class: types.ClassTrivial},
		{N: 4, R: 0, C: 0, Class: types.ClassTrivial},
		{N: 4, R: 2, C: 3, Class: types.ClassExceptional},
		{N: 4, R: 4, C: 0, Class: types.ClassTrivial},
		{N: 5, R: 0, C: 0, Class: types.ClassTrivial},
		{N: 5, R: 5, C: 0, Class: types.ClassTrivial},
		{N: 6, R: 0, C: 0, Class: types.ClassTrivial},
		{N: 6, R: 1, C: 3, Class: types.ClassTrivial},
		{N: 6, R: 5, C: 3, Class: types.ClassTrivial},
		{N: 6, R: 6, C: 0, Class: types.ClassTrivial},
	}
	assert.Equal(t, want, got)
}

func TestSearchBF_KnownExceptionals(t *testing.T) {
	got := SearchBF(factorial.NewTable(), bfConfig(10))

	// C(10,3) = C(10,7) = 120 = 5! match no known family.
	assert.Contains(t, got, types.BFRecord{N: 10, R: 3, C: 5, Class: types.ClassExceptional})
	assert.Contains(t, got, types.BFRecord{N: 10, R: 7, C: 5, Class: types.ClassExceptional})
}

func TestSearchBF_Ordering(t *testing.T) {
	got := SearchBF(factorial.NewTable(), bfConfig(12))

	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		inOrder := cur.N > prev.N || (cur.N == prev.N && cur.R > prev.R)
		require.True(t, inOrder, "records out of order at %d: %+v then %+v", i, prev, cur)
	}
}

func TestSearchBF_Deterministic(t *testing.T) {
	cfg := bfConfig(15)
	first := SearchBF(factorial.NewTable(), cfg)
	second := SearchBF(factorial.NewTable(), cfg)
	assert.Equal(t, first, second)
}

func TestSearchBF_FlagSuppression(t *testing.T) {
	full := SearchBF(factorial.NewTable(), bfConfig(10))

	cfg := bfConfig(10)
	cfg.IncludeTrivial = false
	got := SearchBF(factorial.NewTable(), cfg)

	var want []types.BFRecord
	for _, rec := range full {
		if rec.Class != types.ClassTrivial {
			want = append(want, rec)
		}
	}
	assert.Equal(t, want, got, "dropping trivial must not alter remaining records")
}

func TestSearchBF_ClassTotality(t *testing.T) {
	valid := map[string]bool{
		types.ClassTrivial:     true,
		types.ClassExceptional: true,
	}
	for _, rec := range SearchBF(factorial.NewTable(), bfConfig(20)) {
		assert.True(t, valid[rec.Class], "unexpected class %q for %+v", rec.Class, rec)
	}
}
