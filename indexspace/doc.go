// Package indexspace models a one-based, rank-N cartesian index space and
// converts between linear indices and coordinate tuples without integer
// division on the decode path.
//
// Description:
//
//	A Space is an immutable ordered tuple of axis extents (d_1, …, d_N).
//	Linear indices are one-based and row-major: the first axis varies
//	fastest. Each axis carries a reciprocal.Divisor descriptor, so the
//	div/mod pair of the classic conversion becomes multiply-high + shift.
//
// Algorithm Outline (Decode, linear → coordinates):
//  1. r = i - 1 (work zero-based internally).
//  2. For axes 1..N-1, innermost first:
//     q        = r ÷ d_k   (via the axis descriptor, no divide instruction)
//     coord_k  = r - q·d_k + 1
//     r        = q
//  3. coord_N = r + 1 (the outermost axis needs no division).
//  4. Rank 0 decodes to the empty tuple; rank 1 is the identity.
//
// Encode (coordinates → linear) is plain mixed-radix accumulation from the
// outermost axis inward; it needs no descriptors.
//
// Entry Points:
//
//	Checked and unchecked variants are separate named methods
//	(DecodeChecked vs Decode, EncodeChecked vs Encode). The unchecked
//	forms elide the bounds test for tight loops; their behavior on
//	out-of-range input is unspecified.
//
// Width:
//
//	Space is generic over int32 and int64; the extents' type selects the
//	descriptor arithmetic width. 32-bit spaces require the extent product
//	to stay within the positive int32 range — violating that is rejected
//	at construction, never re-checked on the hot path.
//
// Complexity:
//
//	Construction: O(N·w). Decode/Encode/At: O(N), allocation-free via
//	DecodeInto. Select: O(N), ordinary arithmetic (not performance-critical).
//
// Errors:
//   - ErrInvalidExtent     — non-positive extent, or extent product overflow.
//   - ErrInvalidRange      — construction range not of the form 1..hi.
//   - ErrRankMismatch      — coordinate or selector count differs from rank.
//   - ErrIndexOutOfBounds  — checked access outside [1, Length()] or an axis range.
package indexspace
