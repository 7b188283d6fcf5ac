// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package xxh64 provides the 64-bit xxHash function XXH64 with the seed
// handling and builders of the other hash packages. The hashing itself is
// done by github.com/cespare/xxhash/v2.
package xxh64

import (
	"hash"

	"github.com/cespare/xxhash/v2"
	"github.com/kr/pretty"

	"github.com/ulikunitz/nchash/xlog"
)

// Digest computes XXH64 incrementally. It implements hash.Hash64.
type Digest struct {
	seed uint64
	x    xxhash.Digest
}

var _ hash.Hash64 = (*Digest)(nil)

// New creates a digest for the given seed.
func New(seed uint64) *Digest {
	d := &Digest{seed: seed}
	d.Reset()
	return d
}

// Reset clears the digest's state so that it can be reused. The seed is
// kept.
func (d *Digest) Reset() {
	d.x.ResetWithSeed(d.seed)
}

// Seed returns the seed of the digest.
func (d *Digest) Seed() uint64 { return d.seed }

// Size returns 8.
func (d *Digest) Size() int { return d.x.Size() }

// BlockSize returns 32.
func (d *Digest) BlockSize() int { return d.x.BlockSize() }

// Write adds p to the message. It always returns len(p), nil.
func (d *Digest) Write(p []byte) (n int, err error) {
	n, err = d.x.Write(p)
	if debug != nil {
		xlog.Printf(debug, "write %d bytes: %# v", n, pretty.Formatter(d))
	}
	return n, err
}

// WriteString adds s to the message without converting it to a byte
// slice.
func (d *Digest) WriteString(s string) (n int, err error) {
	return d.x.WriteString(s)
}

// Sum64 returns the hash of the bytes written so far without modifying the
// digest.
func (d *Digest) Sum64() uint64 { return d.x.Sum64() }

// Sum appends the big-endian hash value to b.
func (d *Digest) Sum(b []byte) []byte { return d.x.Sum(b) }

// Sum64 returns the XXH64 hash of p for the given seed.
func Sum64(p []byte, seed uint64) uint64 {
	if seed == 0 {
		return xxhash.Sum64(p)
	}
	var x xxhash.Digest
	x.ResetWithSeed(seed)
	x.Write(p)
	return x.Sum64()
}

// Builder creates digests for a fixed seed.
type Builder struct {
	Seed uint64
}

// New returns a fresh digest.
func (b Builder) New() *Digest {
	return New(b.Seed)
}
