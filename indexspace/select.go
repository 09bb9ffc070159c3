package indexspace

// Selection is the result of a composite (slicing) index expression: the
// free axes form a sub-space, the pinned axes carry fixed coordinates.
// Immutable, like Space.
type Selection[T Int] struct {
	free Space[T] // index space over the free axes, in original order
	axes []int    // original axis of each free axis
	base []T      // full-rank template: pinned coordinates, 1 in free slots
}

// Select resolves a composite index expression over the space. Arguments
// are the closed Selector set: Coord pins an axis (bounds-checked), Drop
// consumes one axis pinning it at 1, and All placeholders expand to the
// axes left unclaimed — each All consumes one axis, with the first
// absorbing the surplus, so a sole All covers the whole space.
// Returns ErrRankMismatch when the selectors cannot consume exactly the
// rank, ErrIndexOutOfBounds when a pinned coordinate is invalid.
// Conformance scaffolding: ordinary arithmetic, not the reciprocal path.
// Complexity: O(N).
func (s Space[T]) Select(sels ...Selector[T]) (Selection[T], error) {
	n := len(s.ext)
	pinned, alls := 0, 0
	for _, sel := range sels {
		if sel.kind == selAll {
			alls++
		} else {
			pinned++
		}
	}
	// The first All absorbs every unclaimed axis (possibly none); any
	// further All consumes exactly one.
	firstTake := n - pinned - (alls - 1)
	if (alls == 0 && pinned != n) || (alls > 0 && firstTake < 0) {
		return Selection[T]{}, ErrRankMismatch
	}

	base := make([]T, n)
	axes := make([]int, 0, n-pinned)
	axis := 0
	first := true
	for _, sel := range sels {
		switch sel.kind {
		case selCoord:
			if sel.coord < 1 || sel.coord > s.ext[axis] {
				return Selection[T]{}, ErrIndexOutOfBounds
			}
			base[axis] = sel.coord
			axis++
		case selDrop:
			base[axis] = 1
			axis++
		case selAll:
			take := 1
			if first {
				take = firstTake
				first = false
			}
			for j := 0; j < take; j++ {
				base[axis] = 1
				axes = append(axes, axis)
				axis++
			}
		}
	}

	freeExt := make([]T, len(axes))
	for i, a := range axes {
		freeExt[i] = s.ext[a]
	}
	free, err := New(freeExt...)
	if err != nil {
		return Selection[T]{}, err
	}

	return Selection[T]{free: free, axes: axes, base: base}, nil
}

// Space returns the index space spanned by the free axes, in original
// axis order. Complexity: O(1).
func (sel Selection[T]) Space() Space[T] {
	return sel.free
}

// Rank returns the number of free axes. Complexity: O(1).
func (sel Selection[T]) Rank() int {
	return len(sel.axes)
}

// Length returns the number of elements the selection spans.
// Complexity: O(N).
func (sel Selection[T]) Length() T {
	return sel.free.Length()
}

// Coordinate returns the full-rank coordinate tuple of the i-th selection
// element (one-based, row-major over the free axes): free axes decode
// from i, pinned axes keep their fixed coordinates.
// Returns ErrIndexOutOfBounds for i outside [1, Length()].
// Complexity: O(N).
func (sel Selection[T]) Coordinate(i T) ([]T, error) {
	fc, err := sel.free.DecodeChecked(i)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(sel.base))
	copy(out, sel.base)
	for k, a := range sel.axes {
		out[a] = fc[k]
	}

	return out, nil
}
