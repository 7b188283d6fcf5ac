// Copyright 2015 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The package u64 provides basic functions for the uint64 type.
package u64

// RotL rotates x left by k bits. Only the lower six bits of k are used, so
// RotL(x, 0) returns x unchanged.
func RotL(x uint64, k uint) uint64 {
	k &= 63
	return x<<k | x>>(64-k)
}

// LE returns the little-endian uint64 stored in the first eight bytes of p.
// The function panics if p is shorter than eight bytes.
func LE(p []byte) uint64 {
	if len(p) < 8 {
		panic("u64: slice shorter than 8 bytes")
	}
	return uint64(p[0]) | uint64(p[1])<<8 | uint64(p[2])<<16 |
		uint64(p[3])<<24 | uint64(p[4])<<32 | uint64(p[5])<<40 |
		uint64(p[6])<<48 | uint64(p[7])<<56
}

// LE32 returns the little-endian uint32 stored in the first four bytes of
// p widened to 64 bit. It panics if p is shorter than four bytes.
func LE32(p []byte) uint64 {
	if len(p) < 4 {
		panic("u64: slice shorter than 4 bytes")
	}
	return uint64(p[0]) | uint64(p[1])<<8 | uint64(p[2])<<16 |
		uint64(p[3])<<24
}

// PutBE stores x in big-endian byte order into the first eight bytes of p.
func PutBE(p []byte, x uint64) {
	_ = p[7]
	p[0] = byte(x >> 56)
	p[1] = byte(x >> 48)
	p[2] = byte(x >> 40)
	p[3] = byte(x >> 32)
	p[4] = byte(x >> 24)
	p[5] = byte(x >> 16)
	p[6] = byte(x >> 8)
	p[7] = byte(x)
}

// ByteSwap reverses the byte order of x.
func ByteSwap(x uint64) uint64 {
	return (x&0xff00000000000000)>>56 |
		(x&0x00ff000000000000)>>40 |
		(x&0x0000ff0000000000)>>24 |
		(x&0x000000ff00000000)>>8 |
		(x&0x00000000ff000000)<<8 |
		(x&0x0000000000ff0000)<<24 |
		(x&0x000000000000ff00)<<40 |
		(x&0x00000000000000ff)<<56
}
