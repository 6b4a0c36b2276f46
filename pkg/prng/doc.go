// Package prng provides Pikmin 2's internal pseudo-random generator: a
// 32-bit linear congruential generator plus the derived draws (bounded
// integers, unit floats, list shuffles, weighted index selection) the
// cave generator builds every placement decision on top of.
//
// # Determinism
//
// PRNG holds a single mutable uint32 seed. Every method that consumes
// randomness advances that seed and is documented with exactly how many
// raw calls it makes and in what order — the generator's output is only
// bit-exact with the game if that order is reproduced precisely (see
// pkg/generator). PRNG is not safe for concurrent use: the game's RNG is
// a single mutable cell, and a *PRNG should be threaded explicitly
// through one generation's call tree rather than shared across
// goroutines. Distinct generations should each own their own *PRNG (see
// pkg/batch for the parallel sweep that does exactly that).
package prng
