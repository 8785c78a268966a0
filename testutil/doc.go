// Package testutil provides testing utilities for dimgo.
//
// This package is intended for use in tests only. It provides a seeded,
// thread-safe RNG that generates random dimensions, shuffled declarations
// and scalar samples for property tests.
//
// # Random Dimensions
//
//	rng := testutil.NewRNG(seed)
//	v := rng.Vector(4, 3)            // up to 4 terms, exponents in [-3, 3]
//	terms := rng.Declaration(v)      // v's terms in random order
package testutil
