// Package indexspace: domain types shared by construction, codec, and
// selection. Errors live in errors.go per the package conventions.
package indexspace

import "github.com/katalvlaran/fastindex/reciprocal"

// Int is the width constraint shared with the reciprocal package: the
// extents' integer type selects 32- or 64-bit conversion arithmetic.
type Int = reciprocal.Int

// Range is a one-based inclusive axis range, Lo..Hi. Construction of a
// Space accepts only ranges with Lo == 1 (the one-based convention).
type Range[T Int] struct {
	Lo, Hi T
}

// OneTo returns the canonical one-based range 1..n.
// Complexity: O(1).
func OneTo[T Int](n T) Range[T] {
	return Range[T]{Lo: 1, Hi: n}
}

// Len returns the number of values in the range (0 when empty).
// Complexity: O(1).
func (r Range[T]) Len() T {
	if r.Hi < r.Lo {
		return 0
	}

	return r.Hi - r.Lo + 1
}

// Contains reports whether v lies within the range.
// Complexity: O(1).
func (r Range[T]) Contains(v T) bool {
	return v >= r.Lo && v <= r.Hi
}

// Shaped is any array-like value that can report its per-axis extents.
// FromShape consumes only the extents; storage and element type are
// irrelevant to the index space.
type Shaped[T Int] interface {
	Shape() []T
}

// selectorKind discriminates the closed set of composite index arguments.
type selectorKind uint8

const (
	selCoord selectorKind = iota // pins one axis to a coordinate
	selAll                       // whole-axes placeholder, expanded before resolution
	selDrop                      // rank-0 marker: consumes one axis, contributes no free axis
)

// Selector is one argument of a composite (slicing) index expression.
// The set is closed: Coord, All, and Drop are the only constructors, so
// Select resolves the argument kinds before entering any conversion loop.
type Selector[T Int] struct {
	kind  selectorKind
	coord T
}

// Coord pins one axis to the given one-based coordinate.
func Coord[T Int](v T) Selector[T] {
	return Selector[T]{kind: selCoord, coord: v}
}

// All is the whole-axes placeholder (the index space used as its own
// index). As the sole argument it consumes every axis; in a mixture, each
// All consumes one axis and the first additionally absorbs the axes left
// over once every other selector has claimed its own.
func All[T Int]() Selector[T] {
	return Selector[T]{kind: selAll}
}

// Drop is the rank-0 nested-space marker: it consumes exactly one axis and
// contributes no free coordinate, pinning the axis at 1. Intended for
// degenerate (extent-1) dimensions.
func Drop[T Int]() Selector[T] {
	return Selector[T]{kind: selDrop}
}
