// Package fastindex converts between linear indices and N-dimensional
// coordinate tuples without integer division on the hot path.
//
// 🚀 What is fastindex?
//
//	A small, zero-dependency library for one-based multi-dimensional
//	index arithmetic:
//		• Reciprocal division: precomputed magic-number descriptors that
//		  replace div/mod by multiply-high + shift
//		• Index spaces: immutable rank-N extent tuples with decode
//		  (linear → coordinates), encode (coordinates → linear),
//		  bounds-checked lookup and composite slicing
//		• 32- and 64-bit arithmetic, selected by the extents you build with
//
// ✨ Why choose fastindex?
//
//   - Division-free decode – multiply+shift is markedly cheaper than a
//     hardware divide in tight numeric loops
//   - Rock-solid guarantees – immutable values, safe for unsynchronized
//     concurrent use, zero allocation on the decode hot path
//   - Pure Go – no cgo, no hidden deps
//   - Drop-in semantics – row-major, one-based, matching the standard
//     cartesian-index convention
//
// Under the hood, everything is organized under two subpackages:
//
//	reciprocal/ — per-axis reciprocal-multiplication divisor descriptors
//	indexspace/ — the Space value type: construction, queries, codec, slicing
//
// Quick sketch for extents (3, 4):
//
//	    linear 1..12  ⇄  (1,1) (2,1) (3,1) (1,2) … (3,4)
//
//	first axis varies fastest (row-major, one-based).
//
// Dive into README.md for full examples and the conversion algorithm.
//
//	go get github.com/katalvlaran/fastindex
package fastindex
