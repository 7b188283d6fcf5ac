// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package u64

import "math/bits"

// Mul128 returns the full 128-bit product of x and y split into the lower
// and the upper 64 bits.
func Mul128(x, y uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(x, y)
	return lo, hi
}

// Mul128Portable computes the same product as Mul128 using only 32x32-bit
// multiplications. The four partial products are combined with explicit
// carry propagation.
func Mul128Portable(x, y uint64) (lo, hi uint64) {
	const mask32 = 1<<32 - 1
	xl, xh := x&mask32, x>>32
	yl, yh := y&mask32, y>>32

	ll := xl * yl
	lh := xl * yh
	hl := xh * yl
	hh := xh * yh

	// middle column; can't overflow: (2^32-1) + 2*(2^32-1) < 2^64
	mid := ll>>32 + lh&mask32 + hl&mask32

	lo = mid<<32 | ll&mask32
	hi = hh + lh>>32 + hl>>32 + mid>>32
	return lo, hi
}
