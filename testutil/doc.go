// Package testutil provides testing utilities for bitvec.
//
// This package is intended for use in tests and benchmarks only. It provides
// a seeded, thread-safe random number generator for reproducible bit
// patterns:
//
//	rng := testutil.NewRNG(seed)
//	bits := rng.Bits(128)       // random []bool
//	rng.Reset()                 // replay the same sequence
package testutil
