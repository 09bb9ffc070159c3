package indexspace

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/fastindex/reciprocal"
)

// Space is an immutable one-based index space of rank N: one extent and one
// reciprocal descriptor per axis. The zero value is the valid rank-0
// (scalar) space with a single logical element. Cheap to copy; safe for
// unsynchronized concurrent use.
type Space[T Int] struct {
	ext []T
	div []reciprocal.Divisor[T]
}

// New constructs a Space from positive extents, one descriptor per axis.
// The extents' integer width selects the conversion arithmetic width.
// Returns ErrInvalidExtent if any extent is non-positive or the extent
// product exceeds the width's signed maximum. No extents ⇒ the scalar
// space. Complexity: O(N·w) time, O(N) memory.
func New[T Int](extents ...T) (Space[T], error) {
	ext := make([]T, len(extents))
	copy(ext, extents)
	div := make([]reciprocal.Divisor[T], len(ext))

	limit := int64(math.MaxInt32)
	if wide[T]() {
		limit = math.MaxInt64
	}
	length := int64(1)
	for i, d := range ext {
		if d <= 0 {
			return Space[T]{}, ErrInvalidExtent
		}
		if length > limit/int64(d) {
			return Space[T]{}, ErrInvalidExtent
		}
		length *= int64(d)
		div[i] = reciprocal.MustNew(d)
	}

	return Space[T]{ext: ext, div: div}, nil
}

// MustNew is New for statically known extents; it panics on error.
// Intended for tests, examples, and table initialization.
func MustNew[T Int](extents ...T) Space[T] {
	s, err := New(extents...)
	if err != nil {
		panic(err)
	}

	return s
}

// FromRanges constructs a Space from one-based ranges; each range must be
// of the form 1..hi and its upper bound becomes the axis extent.
// Returns ErrInvalidRange if any range does not start at 1 or is empty.
// Complexity: O(N·w).
func FromRanges[T Int](rs ...Range[T]) (Space[T], error) {
	ext := make([]T, len(rs))
	for i, r := range rs {
		if r.Lo != 1 || r.Hi < 1 {
			return Space[T]{}, ErrInvalidRange
		}
		ext[i] = r.Hi
	}

	return New(ext...)
}

// FromShape constructs a Space from an array-like value's per-axis extents.
// Complexity: O(N·w).
func FromShape[T Int](src Shaped[T]) (Space[T], error) {
	return New(src.Shape()...)
}

// Rank returns the number of axes N.
// Complexity: O(1).
func (s Space[T]) Rank() int {
	return len(s.ext)
}

// Is64 reports whether the space performs 64-bit conversion arithmetic,
// inherited from the extents' integer width. Complexity: O(1).
func (s Space[T]) Is64() bool {
	return wide[T]()
}

// Size returns a copy of the original extents, in axis order. The values
// are the exact construction inputs, not re-derived from the descriptors.
// Complexity: O(N).
func (s Space[T]) Size() []T {
	out := make([]T, len(s.ext))
	copy(out, s.ext)

	return out
}

// Length returns the total element count, the product of all extents.
// The rank-0 space has length 1. Complexity: O(N).
func (s Space[T]) Length() T {
	n := T(1)
	for _, d := range s.ext {
		n *= d
	}

	return n
}

// Bounds returns the one-based axis ranges [1, extent_k], for boundary checks.
// Complexity: O(N).
func (s Space[T]) Bounds() []Range[T] {
	out := make([]Range[T], len(s.ext))
	for i, d := range s.ext {
		out[i] = OneTo(d)
	}

	return out
}

// Contains reports whether the coordinate tuple lies within the space:
// exactly N coordinates, each within its axis range. Never an error.
// Complexity: O(N).
func (s Space[T]) Contains(coords ...T) bool {
	if len(coords) != len(s.ext) {
		return false
	}
	for k, c := range coords {
		if c < 1 || c > s.ext[k] {
			return false
		}
	}

	return true
}

// Equal reports whether both spaces have the same rank and per-axis
// extents. Spaces of different rank are never equal; the comparison is
// always a boolean, never an error. Complexity: O(N).
func (s Space[T]) Equal(o Space[T]) bool {
	if len(s.ext) != len(o.ext) {
		return false
	}
	for i := range s.ext {
		if s.ext[i] != o.ext[i] {
			return false
		}
	}

	return true
}

// Equal reports whether a and b describe the same index space.
// Symmetric convenience over the method form.
func Equal[T Int](a, b Space[T]) bool {
	return a.Equal(b)
}

// String renders the space constructor-style, e.g. indexspace.Space((3, 4)).
// Deterministic and reproducible from Size; rank 1 renders with a trailing
// comma ((5,)) to stay tuple-shaped. Diagnostics only, not a persisted format.
func (s Space[T]) String() string {
	var b strings.Builder
	b.WriteString("indexspace.Space((")
	for i, d := range s.ext {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatInt(int64(d), 10))
	}
	if len(s.ext) == 1 {
		b.WriteString(",")
	}
	b.WriteString("))")

	return b.String()
}

// wide reports whether T is 64 bits; the shift vanishes on 32-bit
// instantiations.
func wide[T Int]() bool {
	return T(1)<<40 != 0
}
