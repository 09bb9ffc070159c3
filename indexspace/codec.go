package indexspace

// Decode converts the one-based linear index i into its coordinate tuple.
// Unchecked: i outside [1, Length()] yields an unspecified tuple (the
// caller pre-validates or uses DecodeChecked). Allocates the result; use
// DecodeInto for the allocation-free form.
// Complexity: O(N), division-free.
func (s Space[T]) Decode(i T) []T {
	return s.DecodeInto(make([]T, len(s.ext)), i)
}

// DecodeInto is Decode writing into dst, which must have capacity ≥ Rank().
// Returns dst truncated to the rank. Zero allocation; the hot-path form
// for tight loops. Unchecked like Decode.
// Complexity: O(N), division-free.
func (s Space[T]) DecodeInto(dst []T, i T) []T {
	n := len(s.ext)
	dst = dst[:n]
	if n == 0 {
		return dst
	}
	r := i - 1
	for k := 0; k < n-1; k++ {
		q := s.div[k].Div(r)
		dst[k] = r - q*s.ext[k] + 1
		r = q
	}
	// The outermost axis needs no division: nothing follows it.
	dst[n-1] = r + 1

	return dst
}

// DecodeChecked is Decode with bounds validation: i must lie in
// [1, Length()], else ErrIndexOutOfBounds. For the rank-0 space only
// i == 1 is valid. Complexity: O(N).
func (s Space[T]) DecodeChecked(i T) ([]T, error) {
	if i < 1 || i > s.Length() {
		return nil, ErrIndexOutOfBounds
	}

	return s.Decode(i), nil
}

// Encode converts a full coordinate tuple into its one-based linear index
// by mixed-radix accumulation from the outermost axis inward; no
// descriptors or divisions are involved. Unchecked: the tuple must have
// exactly Rank() in-bounds coordinates, otherwise the result is
// unspecified (or the call panics on a short tuple).
// Complexity: O(N).
func (s Space[T]) Encode(coords ...T) T {
	idx := T(0)
	for k := len(s.ext) - 1; k >= 0; k-- {
		idx = idx*s.ext[k] + (coords[k] - 1)
	}

	return idx + 1
}

// EncodeChecked is Encode with validation: ErrRankMismatch when the tuple
// length differs from the rank, ErrIndexOutOfBounds when any coordinate
// leaves its axis range. Complexity: O(N).
func (s Space[T]) EncodeChecked(coords ...T) (T, error) {
	if len(coords) != len(s.ext) {
		return 0, ErrRankMismatch
	}
	for k, c := range coords {
		if c < 1 || c > s.ext[k] {
			return 0, ErrIndexOutOfBounds
		}
	}

	return s.Encode(coords...), nil
}

// At validates a full coordinate tuple and returns it packed: exactly
// Rank() coordinates (ErrRankMismatch otherwise), each within its axis
// range (ErrIndexOutOfBounds otherwise). Validation plus pass-through;
// encoding to a linear offset is the caller's concern.
// Complexity: O(N).
func (s Space[T]) At(coords ...T) ([]T, error) {
	if len(coords) != len(s.ext) {
		return nil, ErrRankMismatch
	}
	for k, c := range coords {
		if c < 1 || c > s.ext[k] {
			return nil, ErrIndexOutOfBounds
		}
	}
	out := make([]T, len(coords))
	copy(out, coords)

	return out, nil
}
