// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package nchash

import (
	"hash"

	"github.com/ulikunitz/nchash/basics/u64"
)

// wide32 provides a 32-bit hash through the hash.Hash64 interface. The
// 64-bit value is the zero-extended 32-bit value and Sum appends it as
// eight big-endian bytes.
type wide32 struct {
	hash.Hash32
}

func (h wide32) Sum64() uint64 {
	return uint64(h.Hash32.Sum32())
}

func (h wide32) Sum(b []byte) []byte {
	var p [8]byte
	u64.PutBE(p[:], h.Sum64())
	return append(b, p[:]...)
}

// Size returns 8.
func (h wide32) Size() int { return 8 }

func widen(h hash.Hash32) hash.Hash64 {
	return wide32{Hash32: h}
}
