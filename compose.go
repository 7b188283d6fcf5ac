// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package nchash

import "unsafe"

// toBytes converts a string into a byte slice without copying. The bytes
// must not be modified.
func toBytes(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// Bytes returns the hash of the concatenation of all parts.
func Bytes(b Builder, parts ...[]byte) uint64 {
	h := b.New()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum64()
}

// String returns the hash of the string s.
func String(b Builder, s string) uint64 {
	h := b.New()
	h.Write(toBytes(s))
	return h.Sum64()
}

// Strings returns the hash of the strings joined by the separator sep.
// It doesn't allocate the joined string.
func Strings(b Builder, ss []string, sep byte) uint64 {
	h := b.New()
	p := []byte{sep}
	for i, s := range ss {
		if i > 0 {
			h.Write(p)
		}
		h.Write(toBytes(s))
	}
	return h.Sum64()
}
