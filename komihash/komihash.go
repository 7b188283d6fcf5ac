// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package komihash implements the seeded 64-bit komihash function.
//
// The core mixing primitive is the full 128-bit product of two 64-bit
// lanes. Short messages use length specialized paths; messages of 64 bytes
// and more are processed by a loop over 64-byte blocks using eight lanes.
// Trailing partial words are padded with a sentinel bit, so that messages
// of different length never produce the same padded word.
package komihash

import (
	"github.com/ulikunitz/nchash/basics/u64"
)

// Initial values of the primary lanes; the seed is mixed into them.
const (
	init1 uint64 = 0x243F6A8885A308D3
	init5 uint64 = 0x452821E638D01377
)

// Constants for the six secondary lanes of the block loop.
const (
	init2 uint64 = 0x13198A2E03707344
	init3 uint64 = 0xA4093822299F31D0
	init4 uint64 = 0x082EFA98EC4E6C89
	init6 uint64 = 0xBE5466CF34E90C6C
	init7 uint64 = 0xC0AC29B7C97C50DD
	init8 uint64 = 0x3F84D5B5B5470917
)

// lanes holds the eight 64-bit lanes. s[0] and s[4] are the primary lanes
// Seed1 and Seed5; the others are only used by the block loop.
type lanes struct {
	s [8]uint64
}

// init derives the primary lanes from the seed. The secondary lanes are
// zeroed.
func (l *lanes) init(seed uint64) {
	*l = lanes{}
	l.s[0] = init1 ^ (seed & 0x5555555555555555)
	l.s[4] = init5 ^ (seed & 0xAAAAAAAAAAAAAAAA)
}

// round is the hash round: multiply the primary lanes and fold the upper
// half of the product back.
func (l *lanes) round() {
	lo, hi := u64.Mul128(l.s[0], l.s[4])
	l.s[4] += hi
	l.s[0] = l.s[4] ^ lo
}

// hash16 mixes the first 16 bytes of p into the primary lanes.
func (l *lanes) hash16(p []byte) {
	lo, hi := u64.Mul128(l.s[0]^u64.LE(p), l.s[4]^u64.LE(p[8:]))
	l.s[4] += hi
	l.s[0] = l.s[4] ^ lo
}

// fin mixes the final words r2l and r2h and runs one more round. It
// returns the hash value.
func (l *lanes) fin(r2l, r2h uint64) uint64 {
	lo, hi := u64.Mul128(r2l, r2h)
	l.s[4] += hi
	l.s[0] = l.s[4] ^ lo
	l.round()
	return l.s[0]
}

// initBulk derives the secondary lanes before the first block.
func (l *lanes) initBulk() {
	l.s[1] = init2 ^ l.s[0]
	l.s[2] = init3 ^ l.s[0]
	l.s[3] = init4 ^ l.s[0]
	l.s[5] = init6 ^ l.s[4]
	l.s[6] = init7 ^ l.s[4]
	l.s[7] = init8 ^ l.s[4]
}

// block processes one 64-byte block.
func (l *lanes) block(p []byte) {
	p = p[:64]
	s := &l.s
	r1l, r1h := u64.Mul128(s[0]^u64.LE(p), s[4]^u64.LE(p[8:]))
	r2l, r2h := u64.Mul128(s[1]^u64.LE(p[16:]), s[5]^u64.LE(p[24:]))
	r3l, r3h := u64.Mul128(s[2]^u64.LE(p[32:]), s[6]^u64.LE(p[40:]))
	r4l, r4h := u64.Mul128(s[3]^u64.LE(p[48:]), s[7]^u64.LE(p[56:]))

	// The lanes are shifted against each other to prevent them from
	// synchronizing.
	s[4] += r1h
	s[5] += r2h
	s[6] += r3h
	s[7] += r4h
	s[1] = s[4] ^ r2l
	s[2] = s[5] ^ r3l
	s[3] = s[6] ^ r4l
	s[0] = s[7] ^ r1l
}

// fold xors the secondary lanes into the primary lanes after the block
// loop.
func (l *lanes) fold() {
	l.s[4] ^= l.s[5] ^ l.s[6] ^ l.s[7]
	l.s[0] ^= l.s[1] ^ l.s[2] ^ l.s[3]
}

// sentinel returns the padding bit derived from the last message byte.
func sentinel(last byte) uint64 {
	return 1 << (last >> 7)
}

// padL3 reads the n < 8 bytes p[i:i+n] as a word with the sentinel fb
// placed above the data. For n < 4 it reads up to three bytes before i.
func padL3(p []byte, i, n int, fb uint64) uint64 {
	ml8 := uint(n) * 8
	if n < 4 {
		q := p[i+n-3:]
		m := uint64(q[0]) | uint64(q[1])<<8 | uint64(q[2])<<16
		return fb<<ml8 | m>>(24-ml8)
	}
	mh := u64.LE32(p[i+n-4:])
	ml := u64.LE32(p[i:])
	return fb<<ml8 | ml | mh>>(64-ml8)<<32
}

// padNZ reads the 0 < n < 8 bytes at the start of p as a padded word. It
// doesn't read outside of p[:n].
func padNZ(p []byte, n int, fb uint64) uint64 {
	if n < 4 {
		fb <<= uint(n) * 8
		m := uint64(p[0])
		if n > 1 {
			m |= uint64(p[1]) << 8
			if n > 2 {
				m |= uint64(p[2]) << 16
			}
		}
		return fb | m
	}
	ml8 := uint(n) * 8
	mh := u64.LE32(p[n-4:])
	ml := u64.LE32(p)
	return fb<<ml8 | ml | mh>>(64-ml8)<<32
}

// padL4 reads the n < 8 bytes p[i:i+n] as a padded word. It reads up to
// eight bytes before i, which must be part of the message.
func padL4(p []byte, i, n int, fb uint64) uint64 {
	ml8 := uint(n) * 8
	if n < 5 {
		return fb<<ml8 | u64.LE32(p[i+n-4:])>>(32-ml8)
	}
	return fb<<ml8 | u64.LE(p[i+n-8:])>>(64-ml8)
}

// short hashes messages of less than 16 bytes.
func (l *lanes) short(p []byte) uint64 {
	n := len(p)
	traceBranch(n, "short")
	r2l, r2h := l.s[0], l.s[4]
	if n > 7 {
		r2h ^= padL3(p, 8, n-8, sentinel(p[n-1]))
		r2l ^= u64.LE(p)
	} else if n > 0 {
		r2l ^= padNZ(p, n, sentinel(p[n-1]))
	}
	return l.fin(r2l, r2h)
}

// medium hashes messages with a length in the range [16,32).
func (l *lanes) medium(p []byte) uint64 {
	n := len(p)
	traceBranch(n, "medium")
	l.hash16(p)
	fb := sentinel(p[n-1])
	var r2l, r2h uint64
	if n > 23 {
		r2h = l.s[4] ^ padL4(p, 24, n-24, fb)
		r2l = l.s[0] ^ u64.LE(p[16:])
	} else {
		r2l = l.s[0] ^ padL4(p, 16, n-16, fb)
		r2h = l.s[4]
	}
	return l.fin(r2l, r2h)
}

// tail hashes the remaining p[i:] of less than 64 bytes. The bytes p[:i]
// must contain at least 8 bytes of the message preceding the tail, since
// the padded reads look back.
func (l *lanes) tail(p []byte, i int) uint64 {
	n := len(p) - i
	traceBranch(n, "tail")
	if n > 31 {
		l.hash16(p[i:])
		l.hash16(p[i+16:])
		i += 32
		n -= 32
	}
	if n > 15 {
		l.hash16(p[i:])
		i += 16
		n -= 16
	}
	fb := sentinel(p[len(p)-1])
	var r2l, r2h uint64
	if n > 7 {
		r2h = l.s[4] ^ padL4(p, i+8, n-8, fb)
		r2l = l.s[0] ^ u64.LE(p[i:])
	} else {
		r2l = l.s[0] ^ padL4(p, i, n, fb)
		r2h = l.s[4]
	}
	return l.fin(r2l, r2h)
}

// finish hashes a complete message of less than 64 bytes, with the initial
// round already applied to l.
func (l *lanes) finish(p []byte) uint64 {
	switch n := len(p); {
	case n < 16:
		return l.short(p)
	case n < 32:
		return l.medium(p)
	}
	return l.tail(p, 0)
}

// Sum64 returns the komihash of p for the given seed.
func Sum64(p []byte, seed uint64) uint64 {
	var l lanes
	l.init(seed)
	l.round()
	if len(p) < 64 {
		return l.finish(p)
	}
	traceBranch(len(p), "bulk")
	l.initBulk()
	i := 0
	for ; len(p)-i >= 64; i += 64 {
		l.block(p[i:])
	}
	l.fold()
	return l.tail(p, i)
}
