// Copyright 2014-2021 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nchash

import (
	"errors"
	"fmt"
	"hash"
	"strings"

	"github.com/ulikunitz/nchash/city"
	"github.com/ulikunitz/nchash/komihash"
	"github.com/ulikunitz/nchash/xxh32"
	"github.com/ulikunitz/nchash/xxh64"
)

// Algorithm identifies a hash function.
type Algorithm int

// Supported algorithms. The zero value selects the default algorithm XXH64.
const (
	XXH64 Algorithm = iota
	City64
	Komihash
	XXH32
)

var algorithmNames = [...]string{
	XXH64:    "xxh64",
	City64:   "city64",
	Komihash: "komihash",
	XXH32:    "xxh32",
}

// String returns the name of the algorithm.
func (a Algorithm) String() string {
	if 0 <= a && int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm returns the algorithm for the given name. Case is
// ignored.
func ParseAlgorithm(name string) (a Algorithm, err error) {
	for i, s := range algorithmNames {
		if strings.EqualFold(s, name) {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("nchash: unknown algorithm %q", name)
}

// Config selects the algorithm and its seeds.
//
// City64 uses both seeds; if both are zero the unseeded CityHash is
// computed. Komihash and XXH64 use Seed only. XXH32 uses the lower 32 bits
// of Seed and rejects larger values.
type Config struct {
	Algorithm Algorithm
	Seed      uint64
	Seed1     uint64
}

// Verify checks the configuration for errors.
func (c *Config) Verify() error {
	if c == nil {
		return errors.New("nchash: configuration is nil")
	}
	switch c.Algorithm {
	case City64:
		return nil
	case Komihash, XXH64:
	case XXH32:
		if c.Seed > 1<<32-1 {
			return fmt.Errorf(
				"nchash: seed %#x exceeds 32 bits for xxh32",
				c.Seed)
		}
	default:
		return fmt.Errorf("nchash: unsupported algorithm %v",
			c.Algorithm)
	}
	if c.Seed1 != 0 {
		return fmt.Errorf("nchash: %v takes a single seed", c.Algorithm)
	}
	return nil
}

// Builder creates independent digests sharing one seed policy.
type Builder interface {
	New() hash.Hash64
}

type builderFunc func() hash.Hash64

func (f builderFunc) New() hash.Hash64 { return f() }

// NewBuilder returns a builder for the configuration.
func NewBuilder(cfg Config) (Builder, error) {
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	switch cfg.Algorithm {
	case City64:
		b := city.Builder{
			Seed0:  cfg.Seed,
			Seed1:  cfg.Seed1,
			Seeded: cfg.Seed != 0 || cfg.Seed1 != 0,
		}
		return builderFunc(func() hash.Hash64 { return b.New() }), nil
	case Komihash:
		b := komihash.Builder{Seed: cfg.Seed}
		return builderFunc(func() hash.Hash64 { return b.New() }), nil
	case XXH32:
		b := xxh32.Builder{Seed: uint32(cfg.Seed)}
		return builderFunc(func() hash.Hash64 {
			return widen(b.New())
		}), nil
	}
	b := xxh64.Builder{Seed: cfg.Seed}
	return builderFunc(func() hash.Hash64 { return b.New() }), nil
}

// New returns a digest for the algorithm using zero seeds. It panics for
// an unknown algorithm.
func New(a Algorithm) hash.Hash64 {
	b, err := NewBuilder(Config{Algorithm: a})
	if err != nil {
		panic(err)
	}
	return b.New()
}
