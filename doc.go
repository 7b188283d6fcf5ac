// Copyright 2015 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nchash provides fast non-cryptographic hash functions behind
// the hash.Hash64 interface.
//
// The algorithms live in their own packages: city (CityHash64), komihash,
// xxh32 and xxh64. Every package offers a one-shot function, an
// incremental Digest and a seed-carrying Builder. This package selects an
// algorithm by a Config and hashes composite values by writing their
// parts to a single digest.
//
// The hash values must never be used where an adversary controls the
// input and collisions matter; none of the functions is cryptographically
// secure.
package nchash
