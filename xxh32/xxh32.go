// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package xxh32 implements the 32-bit xxHash function XXH32.
//
// The Digest type buffers partial 16-byte blocks across writes, so a
// message may be written in arbitrary pieces.
package xxh32

import (
	"hash"

	"github.com/kr/pretty"

	"github.com/ulikunitz/nchash/basics/u32"
	"github.com/ulikunitz/nchash/xlog"
)

// Primes used by XXH32.
const (
	Prime1 uint32 = 0x9E3779B1
	Prime2 uint32 = 0x85EBCA77
	Prime3 uint32 = 0xC2B2AE3D
	Prime4 uint32 = 0x27D4EB2F
	Prime5 uint32 = 0x165667B1
)

// blockSize is the number of bytes consumed by one update of the four
// lanes.
const blockSize = 16

// round mixes the input word into the accumulator.
func round(acc, input uint32) uint32 {
	acc += input * Prime2
	acc = u32.RotL(acc, 13)
	return acc * Prime1
}

// avalanche spreads the bits of h over the whole word.
func avalanche(h uint32) uint32 {
	h ^= h >> 15
	h *= Prime2
	h ^= h >> 13
	h *= Prime3
	h ^= h >> 16
	return h
}

// finalize mixes the remaining words and bytes of p into h and applies the
// avalanche.
func finalize(h uint32, p []byte) uint32 {
	for ; len(p) >= 4; p = p[4:] {
		h += u32.LE(p) * Prime3
		h = u32.RotL(h, 17) * Prime4
	}
	for _, b := range p {
		h += uint32(b) * Prime5
		h = u32.RotL(h, 11) * Prime1
	}
	return avalanche(h)
}

// Digest computes the XXH32 hash incrementally. It implements
// hash.Hash32.
type Digest struct {
	seed     uint32
	totalLen uint32
	// at least 16 bytes have been written
	large   bool
	v       [4]uint32
	mem     [blockSize]byte
	memSize int
}

var _ hash.Hash32 = (*Digest)(nil)

// New creates a digest using the given seed.
func New(seed uint32) *Digest {
	d := &Digest{seed: seed}
	d.Reset()
	return d
}

// Reset puts the digest into the initial state for its seed.
func (d *Digest) Reset() {
	s := d.seed
	d.v = [4]uint32{s + Prime1 + Prime2, s + Prime2, s, s - Prime1}
	d.totalLen = 0
	d.large = false
	d.mem = [blockSize]byte{}
	d.memSize = 0
}

// Seed returns the seed of the digest.
func (d *Digest) Seed() uint32 { return d.seed }

// Size returns 4.
func (d *Digest) Size() int { return 4 }

// BlockSize returns 16.
func (d *Digest) BlockSize() int { return blockSize }

// update runs one round for each lane using the block p.
func (d *Digest) update(p []byte) {
	p = p[:blockSize]
	d.v[0] = round(d.v[0], u32.LE(p))
	d.v[1] = round(d.v[1], u32.LE(p[4:]))
	d.v[2] = round(d.v[2], u32.LE(p[8:]))
	d.v[3] = round(d.v[3], u32.LE(p[12:]))
}

// Write adds p to the message. It always returns len(p), nil.
func (d *Digest) Write(p []byte) (n int, err error) {
	n = len(p)
	d.totalLen += uint32(n)
	d.large = d.large || n >= blockSize || d.totalLen >= blockSize

	if d.memSize+n < blockSize {
		d.memSize += copy(d.mem[d.memSize:], p)
	} else {
		if d.memSize > 0 {
			k := copy(d.mem[d.memSize:], p)
			d.update(d.mem[:])
			p = p[k:]
			d.memSize = 0
		}
		for ; len(p) >= blockSize; p = p[blockSize:] {
			d.update(p)
		}
		d.memSize = copy(d.mem[:], p)
	}
	if debug != nil {
		xlog.Printf(debug, "write %d bytes: %# v", n, pretty.Formatter(d))
	}
	return n, nil
}

// Sum32 returns the hash of the bytes written so far. It doesn't modify
// the digest and may be called at any time.
func (d *Digest) Sum32() uint32 {
	var h uint32
	if d.large {
		h = u32.RotL(d.v[0], 1) + u32.RotL(d.v[1], 7) +
			u32.RotL(d.v[2], 12) + u32.RotL(d.v[3], 18)
	} else {
		// small input: lane 3 still holds the seed
		h = d.v[2] + Prime5
	}
	h += d.totalLen
	return finalize(h, d.mem[:d.memSize])
}

// Sum appends the big-endian hash value to b.
func (d *Digest) Sum(b []byte) []byte {
	var p [4]byte
	u32.PutBE(p[:], d.Sum32())
	return append(b, p[:]...)
}

// Checksum returns the XXH32 hash of p for the given seed.
func Checksum(p []byte, seed uint32) uint32 {
	n := len(p)
	var h uint32
	if n >= blockSize {
		v1 := seed + Prime1 + Prime2
		v2 := seed + Prime2
		v3 := seed
		v4 := seed - Prime1
		for ; len(p) >= blockSize; p = p[blockSize:] {
			v1 = round(v1, u32.LE(p))
			v2 = round(v2, u32.LE(p[4:]))
			v3 = round(v3, u32.LE(p[8:]))
			v4 = round(v4, u32.LE(p[12:]))
		}
		h = u32.RotL(v1, 1) + u32.RotL(v2, 7) +
			u32.RotL(v3, 12) + u32.RotL(v4, 18)
	} else {
		h = seed + Prime5
	}
	h += uint32(n)
	return finalize(h, p)
}

// Builder creates digests for a fixed seed.
type Builder struct {
	Seed uint32
}

// New returns a fresh digest.
func (b Builder) New() *Digest {
	return New(b.Seed)
}
