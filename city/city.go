// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package city implements the 64-bit CityHash function.
//
// Messages up to 64 bytes are hashed by length specialized mixing
// functions. Longer messages hash their last 64 bytes first and then
// process 64-byte blocks from the front.
package city

import (
	"github.com/ulikunitz/nchash/basics/u64"
)

// Some primes between 2^63 and 2^64.
const (
	K0 uint64 = 0xc3a5c85c97cb3127
	K1 uint64 = 0xb492b66fbe98f273
	K2 uint64 = 0x9ae16a3b2f90404f
)

// kMul is the multiplier of the 128-to-64-bit compression.
const kMul uint64 = 0x9ddfea08eb382d69

func fetch64(p []byte) uint64 { return u64.LE(p) }

func fetch32(p []byte) uint64 { return u64.LE32(p) }

func rot(x uint64, k uint) uint64 { return u64.RotL(x, k) }

func shiftMix(x uint64) uint64 { return x ^ x>>47 }

// hashLen16Mul compresses the 128-bit value (u, v) into 64 bits using the
// multiplier mul.
func hashLen16Mul(u, v, mul uint64) uint64 {
	a := (u ^ v) * mul
	a ^= a >> 47
	b := (v ^ a) * mul
	b ^= b >> 47
	return b * mul
}

// hashLen16 is the Hash128to64 function of the reference.
func hashLen16(u, v uint64) uint64 {
	return hashLen16Mul(u, v, kMul)
}

func hashLen0to16(p []byte) uint64 {
	n := len(p)
	if n > 8 {
		traceBranch(n, "9to16")
		mul := K2 + uint64(n)*2
		a := fetch64(p) + K2
		b := fetch64(p[n-8:])
		c := rot(b, 37)*mul + a
		d := (rot(a, 25) + b) * mul
		return hashLen16Mul(c, d, mul)
	}
	if n >= 4 {
		traceBranch(n, "4to8")
		mul := K2 + uint64(n)*2
		a := fetch32(p)
		return hashLen16Mul(uint64(n)+a<<3, fetch32(p[n-4:]), mul)
	}
	if n > 0 {
		traceBranch(n, "1to3")
		a := uint32(p[0])
		b := uint32(p[n>>1])
		c := uint32(p[n-1])
		y := uint64(a + b<<8)
		z := uint64(uint32(n) + c<<2)
		return shiftMix(y*K2^z*K0) * K2
	}
	traceBranch(n, "empty")
	return K2
}

func hashLen17to32(p []byte) uint64 {
	n := len(p)
	mul := K2 + uint64(n)*2
	a := fetch64(p) * K1
	b := fetch64(p[8:]) * K2
	c := fetch64(p[n-8:]) * mul
	d := fetch64(p[n-16:]) * K2
	return hashLen16Mul(rot(a+b, 43)+rot(c, 30)+d,
		a+rot(b+K2, 18)+c, mul)
}

// weakHashLen32WithSeeds mixes the four words w, x, y, z with the seeds a
// and b into a 128-bit value.
func weakHashLen32WithSeeds(w, x, y, z, a, b uint64) (lo, hi uint64) {
	a += w
	b = rot(b+a+z, 21)
	c := a
	a += x
	a += y
	b += rot(a, 44)
	return a + z, b + c
}

// weakHashLen32 reads the four words from the first 32 bytes of p.
func weakHashLen32(p []byte, a, b uint64) (lo, hi uint64) {
	p = p[:32]
	return weakHashLen32WithSeeds(fetch64(p), fetch64(p[8:]),
		fetch64(p[16:]), fetch64(p[24:]), a, b)
}

func hashLen33to64(p []byte) uint64 {
	n := len(p)
	mul := K2 + uint64(n)*2
	a := fetch64(p) * K2
	b := fetch64(p[8:])
	c := fetch64(p[n-24:])
	d := fetch64(p[n-32:])
	e := fetch64(p[16:]) * K2
	f := fetch64(p[24:]) * 9
	g := fetch64(p[n-8:])
	h := fetch64(p[n-16:]) * mul
	u := rot(a+g, 43) + (rot(b, 30)+c)*9
	v := ((a + g) ^ d) + f + 1
	w := (u64.ByteSwap((u+v)*mul) + g) * mul
	x := rot(e+f, 42) + c
	y := (u64.ByteSwap((v+w)*mul) + g) * mul
	z := e + f + c
	a = u64.ByteSwap((x+z)*mul+y) + b
	b = shiftMix((z+a)*mul+d+h) * mul
	return b + x
}

// Sum64 returns the 64-bit CityHash of p.
func Sum64(p []byte) uint64 {
	n := len(p)
	if n <= 32 {
		if n <= 16 {
			return hashLen0to16(p)
		}
		traceBranch(n, "17to32")
		return hashLen17to32(p)
	} else if n <= 64 {
		traceBranch(n, "33to64")
		return hashLen33to64(p)
	}
	traceBranch(n, "bulk")

	// The tail is hashed first. The loop keeps 56 bytes of state: v, w,
	// x, y and z.
	x := fetch64(p[n-40:])
	y := fetch64(p[n-16:]) + fetch64(p[n-56:])
	z := hashLen16(fetch64(p[n-48:])+uint64(n), fetch64(p[n-24:]))
	v1, v2 := weakHashLen32(p[n-64:], uint64(n), z)
	w1, w2 := weakHashLen32(p[n-32:], y+K1, x)
	x = x*K1 + fetch64(p)

	// Only whole 64-byte blocks are processed; at least one byte is left
	// over for the tail already hashed above.
	k := (n - 1) &^ 63
	for ; k > 0; k -= 64 {
		x = rot(x+y+v1+fetch64(p[8:]), 37) * K1
		y = rot(y+v2+fetch64(p[48:]), 42) * K1
		x ^= w2
		y += v1 + fetch64(p[40:])
		z = rot(z+w1, 33) * K1
		v1, v2 = weakHashLen32(p, v2*K1, x+w1)
		w1, w2 = weakHashLen32(p[32:], z+w2, y+fetch64(p[16:]))
		z, x = x, z
		p = p[64:]
	}
	return hashLen16(hashLen16(v1, w1)+shiftMix(y)*K1+z,
		hashLen16(v2, w2)+x)
}

// Sum64WithSeeds returns the CityHash of p mixed with the two seeds.
func Sum64WithSeeds(p []byte, seed0, seed1 uint64) uint64 {
	return hashLen16(Sum64(p)-seed0, seed1)
}

// Sum64WithSeed returns the CityHash of p mixed with a single seed.
func Sum64WithSeed(p []byte, seed uint64) uint64 {
	return Sum64WithSeeds(p, K2, seed)
}
