package estimate_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/prunesize/estimate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustCount returns EntryCount or fails the test.
func mustCount(t *testing.T, m estimate.Mode, nc, ne int) *big.Int {
	t.Helper()
	n, err := estimate.EntryCount(m, nc, ne)
	require.NoError(t, err, "%s(%d,%d)", m, nc, ne)

	return n
}

// TestEntryCount_Empty verifies the empty product in every mode.
func TestEntryCount_Empty(t *testing.T) {
	for _, m := range estimate.Modes() {
		assert.Equal(t, int64(1), mustCount(t, m, 0, 0).Int64(), "mode %s", m)
	}
}

// TestEntryCount_Worked pins the hand-computed examples.
func TestEntryCount_Worked(t *testing.T) {
	cases := []struct {
		mode   estimate.Mode
		nc, ne int
		want   int64
	}{
		{estimate.Exact, 2, 2, 266112},    // (8·3·7·3)·(12·2·11·2)
		{estimate.Permutation, 3, 0, 336}, // 8·7·6
		{estimate.Layout, 2, 2, 1848},     // 8·7·12·11 / (2!·2!)
		{estimate.Orientation, 2, 2, 66528},
		{estimate.Layout, 3, 2, 3696},
		{estimate.Split, 2, 3, 11064}, // 504 + 10560
		{estimate.Split, 2, 0, 504},
		{estimate.Split, 0, 1, 24},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, mustCount(t, tc.mode, tc.nc, tc.ne).Int64(), "%s(%d,%d)", tc.mode, tc.nc, tc.ne)
	}
}

// TestEntryCount_ExactIsOrientedPermutation checks Exact = Permutation·3^nc·2^ne
// over the whole physical range.
func TestEntryCount_ExactIsOrientedPermutation(t *testing.T) {
	for nc := 0; nc <= 8; nc++ {
		for ne := 0; ne <= 12; ne++ {
			perm := mustCount(t, estimate.Permutation, nc, ne)
			mult := new(big.Int).Exp(big.NewInt(3), big.NewInt(int64(nc)), nil)
			mult.Mul(mult, new(big.Int).Exp(big.NewInt(2), big.NewInt(int64(ne)), nil))
			want := new(big.Int).Mul(perm, mult)
			assert.Zero(t, want.Cmp(mustCount(t, estimate.Exact, nc, ne)), "nc=%d ne=%d", nc, ne)
		}
	}
}

// TestEntryCount_LayoutDividesExactly confirms Permutation is divisible by
// nc!·ne! everywhere, so Layout never truncates.
func TestEntryCount_LayoutDividesExactly(t *testing.T) {
	fact := func(n int) *big.Int { return new(big.Int).MulRange(1, int64(n)) }
	for nc := 0; nc <= 8; nc++ {
		for ne := 0; ne <= 12; ne++ {
			perm := mustCount(t, estimate.Permutation, nc, ne)
			div := new(big.Int).Mul(fact(nc), fact(ne))
			q, r := new(big.Int).QuoRem(perm, div, new(big.Int))
			require.Zero(t, r.Sign(), "remainder at nc=%d ne=%d", nc, ne)
			assert.Zero(t, q.Cmp(mustCount(t, estimate.Layout, nc, ne)))
		}
	}
}

// TestEntryCount_Monotone: adding a piece never shrinks Exact or Permutation.
func TestEntryCount_Monotone(t *testing.T) {
	for _, m := range []estimate.Mode{estimate.Exact, estimate.Permutation} {
		for nc := 0; nc <= 8; nc++ {
			for ne := 0; ne <= 12; ne++ {
				cur := mustCount(t, m, nc, ne)
				if nc < 8 {
					assert.GreaterOrEqual(t, mustCount(t, m, nc+1, ne).Cmp(cur), 0, "%s nc %d→%d", m, nc, nc+1)
				}
				if ne < 12 {
					assert.GreaterOrEqual(t, mustCount(t, m, nc, ne+1).Cmp(cur), 0, "%s ne %d→%d", m, ne, ne+1)
				}
			}
		}
	}
}

// TestEntryCount_InvalidRange: more pieces than slots is an error, never a
// negative or zero count.
func TestEntryCount_InvalidRange(t *testing.T) {
	for _, m := range estimate.Modes() {
		for _, nc := range []int{9, -1} {
			n, err := estimate.EntryCount(m, nc, 0)
			assert.ErrorIs(t, err, estimate.ErrInvalidRange)
			assert.Nil(t, n)
		}
		_, err := estimate.EntryCount(m, 0, 13)
		assert.ErrorIs(t, err, estimate.ErrInvalidRange)
	}
}

// TestEntryCount_UnknownMode covers the mode guard.
func TestEntryCount_UnknownMode(t *testing.T) {
	_, err := estimate.EntryCount(estimate.Mode(42), 1, 1)
	assert.ErrorIs(t, err, estimate.ErrUnknownMode)
}

// TestCellSize_BytesAndMegabytes checks the byte multiplier and MB conversion.
func TestCellSize_BytesAndMegabytes(t *testing.T) {
	c, err := estimate.CellSize(estimate.Exact, 2, 2)
	require.NoError(t, err)
	assert.True(t, c.Valid())
	b, err := c.Uint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(266112), b)
	assert.InDelta(t, 0.266112, c.Megabytes(), 1e-12)

	c4, err := estimate.CellSize(estimate.Exact, 2, 2, estimate.WithBytesPerEntry(4))
	require.NoError(t, err)
	assert.Equal(t, int64(266112), c4.Entries.Int64())
	assert.Equal(t, int64(4*266112), c4.Bytes.Int64())
}

// TestCellSize_Invalid keeps the error in the cell and yields NaN megabytes.
func TestCellSize_Invalid(t *testing.T) {
	c, err := estimate.CellSize(estimate.Exact, 9, 0)
	require.ErrorIs(t, err, estimate.ErrInvalidRange)
	assert.False(t, c.Valid())
	assert.ErrorIs(t, c.Err, estimate.ErrInvalidRange)
	assert.True(t, math.IsNaN(c.Megabytes()))
	_, err = c.Uint64()
	assert.ErrorIs(t, err, estimate.ErrInvalidRange)
	assert.Equal(t, "nc=9,ne=0: n/a", c.String())
}

// TestCell_Overflow saturates the uint64 view of the full Exact table.
func TestCell_Overflow(t *testing.T) {
	c, err := estimate.CellSize(estimate.Exact, 8, 12)
	require.NoError(t, err)
	assert.Equal(t, "519024039293878272000", c.Bytes.String())

	v, err := c.Uint64()
	assert.ErrorIs(t, err, estimate.ErrOverflow)
	assert.Equal(t, uint64(math.MaxUint64), v)
	assert.InDelta(t, 519024039293878.272, c.Megabytes(), 1)
}

// TestWithBytesPerEntry_Panics guards the programmer-error path.
func TestWithBytesPerEntry_Panics(t *testing.T) {
	assert.Panics(t, func() { estimate.WithBytesPerEntry(0) })
}

// TestParseMode covers names, case folding and errors.
func TestParseMode(t *testing.T) {
	for _, m := range estimate.Modes() {
		got, err := estimate.ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := estimate.ParseMode("  LAYOUT ")
	require.NoError(t, err)
	assert.Equal(t, estimate.Layout, got)

	_, err = estimate.ParseMode("symmetry")
	assert.ErrorIs(t, err, estimate.ErrUnknownMode)
	assert.Equal(t, "Mode(9)", estimate.Mode(9).String())

	var m estimate.Mode
	require.NoError(t, m.UnmarshalText([]byte("split")))
	assert.Equal(t, estimate.Split, m)
	_, err = estimate.Mode(-1).MarshalText()
	assert.ErrorIs(t, err, estimate.ErrUnknownMode)
}
