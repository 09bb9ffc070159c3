package reciprocal_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fastindex/reciprocal"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that non-positive divisors are rejected for both widths.
func TestNew_Errors(t *testing.T) {
	for _, d := range []int64{0, -1, -5400, math.MinInt64} {
		if _, err := reciprocal.New(d); !errors.Is(err, reciprocal.ErrNonPositiveDivisor) {
			t.Errorf("New(int64(%d)) error = %v; want ErrNonPositiveDivisor", d, err)
		}
	}
	for _, d := range []int32{0, -1, math.MinInt32} {
		if _, err := reciprocal.New(d); !errors.Is(err, reciprocal.ErrNonPositiveDivisor) {
			t.Errorf("New(int32(%d)) error = %v; want ErrNonPositiveDivisor", d, err)
		}
	}
}

// TestNew_WidthAndValue checks that the descriptor records the divisor and
// adopts the arithmetic width of its input type.
func TestNew_WidthAndValue(t *testing.T) {
	v32, err := reciprocal.New(int32(63))
	require.NoError(t, err)
	require.Equal(t, int32(63), v32.Value())
	require.False(t, v32.Is64(), "int32 divisor must yield 32-bit arithmetic")

	v64, err := reciprocal.New(int64(63))
	require.NoError(t, err)
	require.Equal(t, int64(63), v64.Value())
	require.True(t, v64.Is64(), "int64 divisor must yield 64-bit arithmetic")
}

// TestMustNew_Panics verifies the panic contract for programmer errors.
func TestMustNew_Panics(t *testing.T) {
	require.Panics(t, func() { reciprocal.MustNew(int32(0)) })
	require.NotPanics(t, func() { reciprocal.MustNew(int64(7)) })
}

//----------------------------------------------------------------------------//
// Division Equivalence Tests
//----------------------------------------------------------------------------//

// divisors32 covers the interesting shapes: one, powers of two, odd
// composites, primes, and the extreme of the width.
var divisors32 = []int32{1, 2, 3, 4, 5, 6, 7, 8, 10, 11, 16, 63, 100, 641, 5400, 1 << 20, math.MaxInt32 - 1, math.MaxInt32}

var divisors64 = []int64{1, 2, 3, 5, 7, 8, 63, 5400, 1 << 33, (1 << 62) - 57, math.MaxInt64 - 1, math.MaxInt64}

// checkDivisor32 asserts Div/Mod/DivMod against the hardware operators.
func checkDivisor32(t *testing.T, d int32, n int32) {
	t.Helper()
	v := reciprocal.MustNew(d)
	q, r := v.DivMod(n)
	if q != n/d || r != n%d {
		t.Fatalf("DivMod(%d) by %d = (%d, %d); want (%d, %d)", n, d, q, r, n/d, n%d)
	}
	if v.Div(n) != q || v.Mod(n) != r {
		t.Fatalf("Div/Mod(%d) by %d disagree with DivMod", n, d)
	}
}

func checkDivisor64(t *testing.T, d int64, n int64) {
	t.Helper()
	v := reciprocal.MustNew(d)
	q, r := v.DivMod(n)
	if q != n/d || r != n%d {
		t.Fatalf("DivMod(%d) by %d = (%d, %d); want (%d, %d)", n, d, q, r, n/d, n%d)
	}
}

// TestDiv32_MatchesHardware sweeps a dense window around zero plus the
// width extremes for every 32-bit divisor shape.
func TestDiv32_MatchesHardware(t *testing.T) {
	edges := []int32{math.MinInt32, math.MinInt32 + 1, math.MaxInt32 - 1, math.MaxInt32}
	for _, d := range divisors32 {
		for n := int32(-3 * 5400); n <= 3*5400; n++ {
			checkDivisor32(t, d, n)
		}
		for _, n := range edges {
			checkDivisor32(t, d, n)
		}
		// Around multiples of d, where rounding mistakes would surface.
		for k := int32(-4); k <= 4; k++ {
			base := d * k // wraps for huge d; still a legal dividend
			for off := int32(-2); off <= 2; off++ {
				checkDivisor32(t, d, base+off)
			}
		}
	}
}

// TestDiv64_MatchesHardware mirrors the 32-bit sweep in 64-bit arithmetic.
func TestDiv64_MatchesHardware(t *testing.T) {
	edges := []int64{math.MinInt64, math.MinInt64 + 1, math.MaxInt64 - 1, math.MaxInt64}
	for _, d := range divisors64 {
		for n := int64(-3 * 5400); n <= 3*5400; n++ {
			checkDivisor64(t, d, n)
		}
		for _, n := range edges {
			checkDivisor64(t, d, n)
		}
		for k := int64(-4); k <= 4; k++ {
			base := d * k
			for off := int64(-2); off <= 2; off++ {
				checkDivisor64(t, d, base+off)
			}
		}
	}
}

// TestDiv_Randomized cross-checks random dividends and divisors with a
// fixed seed, both widths.
func TestDiv_Randomized(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20000; i++ {
		d32 := int32(rng.Int31n(math.MaxInt32-1) + 1)
		n32 := int32(rng.Uint32())
		checkDivisor32(t, d32, n32)

		d64 := rng.Int63n(math.MaxInt64-1) + 1
		n64 := int64(rng.Uint64())
		checkDivisor64(t, d64, n64)
	}
}

// TestDiv_SmallDivisorsExhaustive32 runs every divisor 1..512 against a
// contiguous dividend window, the densest region for magic-number bugs.
func TestDiv_SmallDivisorsExhaustive32(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive small-divisor sweep skipped in -short mode")
	}
	for d := int32(1); d <= 512; d++ {
		v := reciprocal.MustNew(d)
		for n := int32(-4096); n <= 4096; n++ {
			if q := v.Div(n); q != n/d {
				t.Fatalf("Div(%d) by %d = %d; want %d", n, d, q, n/d)
			}
		}
	}
}
