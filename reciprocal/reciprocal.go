package reciprocal

import "math/bits"

// Int constrains the descriptor to the two signed widths the conversion
// scheme supports. The caller's choice of width selects the arithmetic:
// int32 extents yield 32-bit descriptors, int64 extents yield 64-bit ones.
type Int interface {
	~int32 | ~int64
}

// Divisor is an immutable reciprocal-multiplication descriptor for one
// positive divisor. It is cheap to copy (a handful of machine words) and
// safe for unsynchronized concurrent use.
type Divisor[T Int] struct {
	d     T     // original divisor, > 0
	magic T     // signed magic multiplier (unused when d == 1)
	add   bool  // add the dividend after the high multiply (magic wrapped)
	shift uint8 // final arithmetic shift amount
	wide  bool  // descriptor width: true for 64-bit arithmetic
}

// New derives the descriptor for divisor d.
// Returns ErrNonPositiveDivisor if d ≤ 0.
// Complexity: O(w) for width w; construction-time only.
func New[T Int](d T) (Divisor[T], error) {
	if d <= 0 {
		return Divisor[T]{}, ErrNonPositiveDivisor
	}
	v := Divisor[T]{d: d, wide: is64[T]()}
	if d == 1 {
		// Quotient is the dividend; the magic derivation excludes |d| == 1.
		return v, nil
	}
	w := uint(32)
	if v.wide {
		w = 64
	}
	m, s := signedMagic(uint64(d), w)
	v.magic = T(m)
	v.add = m < 0 // for d > 0, a wrapped (negative) magic requires "+ n"
	v.shift = uint8(s)

	return v, nil
}

// MustNew is New for statically known divisors; it panics on error.
// Intended for tests, examples, and table initialization.
func MustNew[T Int](d T) Divisor[T] {
	v, err := New(d)
	if err != nil {
		panic(err)
	}

	return v
}

// Value returns the original divisor the descriptor was derived from.
// Complexity: O(1).
func (v Divisor[T]) Value() T {
	return v.d
}

// Is64 reports whether the descriptor performs 64-bit arithmetic.
// Complexity: O(1).
func (v Divisor[T]) Is64() bool {
	return v.wide
}

// Div returns trunc(n / d) without a hardware division instruction.
// Valid for every signed n of the descriptor's width.
// Complexity: O(1), allocation-free.
func (v Divisor[T]) Div(n T) T {
	if v.d == 1 {
		return n
	}
	q := mulHi(v.magic, n)
	if v.add {
		q += n
	}
	q >>= v.shift
	// The arithmetic shift rounded toward -inf; add one when negative to
	// truncate toward zero. An over-wide signed shift sign-fills, so the
	// same expression serves both widths.
	q -= q >> 63

	return q
}

// Mod returns n - trunc(n/d)*d, the remainder matching Div's truncation.
// Complexity: O(1), allocation-free.
func (v Divisor[T]) Mod(n T) T {
	return n - v.Div(n)*v.d
}

// DivMod returns quotient and remainder in one descriptor application.
// Complexity: O(1), allocation-free.
func (v Divisor[T]) DivMod(n T) (q, r T) {
	q = v.Div(n)

	return q, n - q*v.d
}

// is64 reports whether T is 64 bits wide. A left shift by 40 vanishes on
// 32-bit instantiations, so the probe costs one instruction and folds per
// instantiation.
func is64[T Int]() bool {
	return T(1)<<40 != 0
}

// mulHi returns the high word of the full-width signed product a·b.
// 32-bit operands use one widening multiply; 64-bit operands use the
// unsigned 128-bit product with sign correction.
func mulHi[T Int](a, b T) T {
	if is64[T]() {
		hi, _ := bits.Mul64(uint64(int64(a)), uint64(int64(b)))
		s := int64(hi)
		if a < 0 {
			s -= int64(b)
		}
		if b < 0 {
			s -= int64(a)
		}

		return T(s)
	}

	return T((int64(a) * int64(b)) >> 32)
}

// signedMagic derives the magic multiplier and shift for signed division
// by d, 2 ≤ d < 2^(w-1), per Hacker's Delight, 2nd ed., figure 10-1.
// The returned magic is the w-bit two's-complement value sign-extended to
// int64; shift is relative to the high word (0 ≤ shift < w).
func signedMagic(d uint64, w uint) (magic int64, shift uint) {
	two := uint64(1) << (w - 1) // 2^(w-1)
	anc := two - 1 - two%d      // absolute value of the "nc" anchor
	p := w - 1
	q1 := two / anc // quotient and remainder of 2^p / |nc|
	r1 := two - q1*anc
	q2 := two / d // quotient and remainder of 2^p / d
	r2 := two - q2*d
	for {
		p++
		q1 *= 2
		r1 *= 2
		if r1 >= anc {
			q1++
			r1 -= anc
		}
		q2 *= 2
		r2 *= 2
		if r2 >= d {
			q2++
			r2 -= d
		}
		delta := d - r2
		if q1 > delta || (q1 == delta && r1 != 0) {
			break
		}
	}
	m := q2 + 1
	if w == 32 {
		magic = int64(int32(uint32(m)))
	} else {
		magic = int64(m)
	}
	shift = p - w

	return magic, shift
}
