// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package city

import (
	"hash"

	"github.com/ulikunitz/nchash/basics/u64"
)

// Digest computes the CityHash of all bytes written to it. It implements
// hash.Hash64.
//
// CityHash reads the end of a long message before its start, so the digest
// keeps a copy of the message until Sum64 is called. Writing a message in
// several pieces gives the same result as writing it at once.
type Digest struct {
	seed0  uint64
	seed1  uint64
	seeded bool
	buf    []byte
}

var _ hash.Hash64 = (*Digest)(nil)

// New creates a digest computing the unseeded CityHash.
func New() *Digest {
	return &Digest{}
}

// NewWithSeeds creates a digest that mixes the two seeds into the result
// in the way Sum64WithSeeds does.
func NewWithSeeds(seed0, seed1 uint64) *Digest {
	return &Digest{seed0: seed0, seed1: seed1, seeded: true}
}

// Reset discards all data written. The seeds are kept.
func (d *Digest) Reset() {
	d.buf = d.buf[:0]
}

// Size returns 8.
func (d *Digest) Size() int { return 8 }

// BlockSize returns the size of the blocks processed by the main loop.
func (d *Digest) BlockSize() int { return 64 }

// Write appends p to the message. It always returns len(p), nil.
func (d *Digest) Write(p []byte) (n int, err error) {
	d.buf = append(d.buf, p...)
	return len(p), nil
}

// WriteString appends s to the message.
func (d *Digest) WriteString(s string) (n int, err error) {
	d.buf = append(d.buf, s...)
	return len(s), nil
}

// Sum64 returns the hash of the message written so far. It doesn't change
// the state of the digest.
func (d *Digest) Sum64() uint64 {
	if d.seeded {
		return Sum64WithSeeds(d.buf, d.seed0, d.seed1)
	}
	return Sum64(d.buf)
}

// Sum appends the big-endian hash value to b.
func (d *Digest) Sum(b []byte) []byte {
	var p [8]byte
	u64.PutBE(p[:], d.Sum64())
	return append(b, p[:]...)
}

// Builder creates digests sharing the same seed policy. The zero value
// builds unseeded digests.
type Builder struct {
	Seed0  uint64
	Seed1  uint64
	Seeded bool
}

// New returns a fresh digest.
func (b Builder) New() *Digest {
	if b.Seeded {
		return NewWithSeeds(b.Seed0, b.Seed1)
	}
	return New()
}
