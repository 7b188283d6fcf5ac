// Copyright 2015 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The package u32 provides basic functions for the uint32 type.
package u32

/* Naming conventions follows the CodeReviewComments in the Go Wiki. */

// RotL rotates x left by k bits. Only the lower five bits of k are used, so
// RotL(x, 0) and RotL(x, 32) return x unchanged.
func RotL(x uint32, k uint) uint32 {
	k &= 31
	return x<<k | x>>(32-k)
}

// LE returns the little-endian uint32 stored in the first four bytes of p.
// The function panics if p is shorter than four bytes.
func LE(p []byte) uint32 {
	if len(p) < 4 {
		panic("u32: slice shorter than 4 bytes")
	}
	return uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16 |
		uint32(p[3])<<24
}

// PutBE stores x in big-endian byte order into the first four bytes of p.
func PutBE(p []byte, x uint32) {
	_ = p[3]
	p[0] = byte(x >> 24)
	p[1] = byte(x >> 16)
	p[2] = byte(x >> 8)
	p[3] = byte(x)
}
