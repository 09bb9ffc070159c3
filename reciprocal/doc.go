// Package reciprocal replaces signed integer division by a fixed positive
// divisor with a multiply-high + shift sequence, using a precomputed
// "magic number" descriptor.
//
// Description:
//
//	Hardware integer division is markedly more expensive than
//	multiplication on both general-purpose and GPU-class processors.
//	When the divisor d is known ahead of time, the quotient n/d can be
//	computed as the high word of n·M shifted right by s, for a magic
//	multiplier M and shift s derived once from d.
//
// Algorithm Outline:
//  1. Derivation (construction time, Hacker's Delight, 2nd ed., §10-4):
//     find the smallest M, s such that
//     trunc(n/d) == (mulhi(M, n) [+ n]) >> s  (+1 when negative)
//     for every signed n of the chosen width. The "+ n" term compensates
//     for M wrapping past the signed maximum; the final "+1 when
//     negative" converts the arithmetic shift's floor rounding into
//     truncation toward zero.
//  2. Division (hot path): one widening multiply, at most one add, one
//     arithmetic shift, one sign fix-up. No divide instruction.
//  3. d == 1 is stored as a pass-through (the derivation excludes it).
//
// Width:
//
//	Divisor is generic over int32 and int64; the descriptor performs all
//	arithmetic in the width it was built with. 32-bit descriptors use a
//	widening 64-bit multiply; 64-bit descriptors use math/bits.Mul64
//	with sign correction.
//
// Complexity:
//
//	Derivation: O(w) iterations for width w.
//	Div/Mod:    O(1), allocation-free, branch-predictable.
//
// Errors:
//   - ErrNonPositiveDivisor — divisor ≤ 0 at construction.
package reciprocal
