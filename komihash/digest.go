// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package komihash

import (
	"hash"

	"github.com/kr/pretty"

	"github.com/ulikunitz/nchash/basics/u64"
	"github.com/ulikunitz/nchash/xlog"
)

// Digest computes the komihash of the bytes written to it incrementally.
// It implements hash.Hash64 and produces the same value as Sum64 for the
// concatenation of all writes.
//
// Full 64-byte blocks are consumed as soon as they are complete. The last
// eight bytes of the consumed blocks are kept, because the padded reads of
// the tail may look back into them.
type Digest struct {
	seed uint64
	// lanes after the initial round
	l    lanes
	bulk bool
	buf  [64]byte
	n    int
	last [8]byte
}

var _ hash.Hash64 = (*Digest)(nil)

// New creates a digest for the given seed.
func New(seed uint64) *Digest {
	d := &Digest{seed: seed}
	d.Reset()
	return d
}

// Reset puts the digest into its initial state. The seed is kept.
func (d *Digest) Reset() {
	d.l.init(d.seed)
	d.l.round()
	d.bulk = false
	d.n = 0
}

// Seed returns the seed of the digest.
func (d *Digest) Seed() uint64 { return d.seed }

// Size returns 8.
func (d *Digest) Size() int { return 8 }

// BlockSize returns 64.
func (d *Digest) BlockSize() int { return 64 }

func (d *Digest) consume(block []byte) {
	if !d.bulk {
		d.l.initBulk()
		d.bulk = true
	}
	d.l.block(block)
	copy(d.last[:], block[56:64])
}

// write consumes the pending bytes and all full blocks of p. The rest of p
// becomes the new pending data.
func (d *Digest) write(p []byte) {
	if d.n > 0 {
		k := copy(d.buf[d.n:], p)
		d.consume(d.buf[:])
		p = p[k:]
		d.n = 0
	}
	for len(p) >= 64 {
		d.consume(p)
		p = p[64:]
	}
	d.n = copy(d.buf[:], p)
}

// Write adds p to the message. It always returns len(p), nil.
func (d *Digest) Write(p []byte) (n int, err error) {
	n = len(p)
	if d.n+n < len(d.buf) {
		d.n += copy(d.buf[d.n:], p)
	} else {
		d.write(p)
	}
	if debug != nil {
		xlog.Printf(debug, "write %d bytes: %# v", n, pretty.Formatter(d))
	}
	return n, nil
}

// Sum64 returns the hash of the message written so far. The digest is not
// modified.
func (d *Digest) Sum64() uint64 {
	l := d.l
	if !d.bulk {
		return l.finish(d.buf[:d.n])
	}
	l.fold()
	var q [8 + 64]byte
	copy(q[:8], d.last[:])
	copy(q[8:], d.buf[:d.n])
	return l.tail(q[:8+d.n], 8)
}

// Sum appends the big-endian hash value to b.
func (d *Digest) Sum(b []byte) []byte {
	var p [8]byte
	u64.PutBE(p[:], d.Sum64())
	return append(b, p[:]...)
}

// Builder creates digests for a fixed seed.
type Builder struct {
	Seed uint64
}

// New returns a fresh digest using the builder's seed.
func (b Builder) New() *Digest {
	return New(b.Seed)
}
