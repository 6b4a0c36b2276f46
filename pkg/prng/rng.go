package prng

import "errors"

// ErrSeedFormat is returned (wrapped) when a seed string does not match
// the 8-hex-digit (optionally "0x"-prefixed) grammar or the "random"
// literal.
var ErrSeedFormat = errors.New("invalid seed format")

// lcgMultiplier and lcgIncrement are the constants of Pikmin 2's LCG.
const (
	lcgMultiplier uint32 = 0x41C64E6D
	lcgIncrement  uint32 = 0x3039
)

// PRNG is Pikmin 2's internal pseudo-random generator. See the package
// doc for concurrency and determinism guarantees.
type PRNG struct {
	seed  uint32
	calls uint64
}

// New creates a PRNG with the given starting seed.
func New(seed Seed) *PRNG {
	return &PRNG{seed: uint32(seed)}
}

// Calls returns the number of raw draws made so far. Exposed for
// debugging and for tests that need to assert on RNG consumption order
// (spec open question: Phase 2's exact consumption order must be
// mirrored from the reference implementation, not re-derived).
func (p *PRNG) Calls() uint64 {
	return p.calls
}

// Seed returns the generator's current internal state.
func (p *PRNG) Seed() Seed {
	return Seed(p.seed)
}

// RandRaw advances the LCG and returns bits 16..30 of the new seed (a
// 15-bit value), matching the game's raw RNG function exactly.
func (p *PRNG) RandRaw() uint32 {
	p.seed = p.seed*lcgMultiplier + lcgIncrement
	p.calls++
	return (p.seed >> 16) & 0x7FFF
}

// RandInt returns a pseudo-random integer in [0, max), or 0 when max is
// 0 (one raw draw is still consumed). The f32
// conversion and truncation toward zero are load-bearing: they are part
// of the original game's cast and must be reproduced exactly, not
// replaced with a cleaner integer formula.
func (p *PRNG) RandInt(max uint32) uint32 {
	return uint32(float32(p.RandRaw()) * (float32(max) / 32768.0))
}

// RandF32 returns a pseudo-random float32 in [0.0, 1.0).
func (p *PRNG) RandF32() float32 {
	return float32(p.RandRaw()) / 32768.0
}

// RandBacksN repeats n times: pick a random index into list, remove that
// element, and push it to the back. The list's length is preserved.
func RandBacksN[T any](p *PRNG, list []T, n int) []T {
	for i := 0; i < n; i++ {
		idx := p.RandInt(uint32(len(list)))
		elem := list[idx]
		list = append(list[:idx], list[idx+1:]...)
		list = append(list, elem)
	}
	return list
}

// RandBacks is RandBacksN(list, len(list)).
func RandBacks[T any](p *PRNG, list []T) []T {
	return RandBacksN(p, list, len(list))
}

// RandSwaps performs a Fisher-Yates-shaped shuffle where, for each index
// i in order, the element there is swapped with a random element (which
// may be itself). Each iteration consumes exactly one raw call,
// regardless of whether i == j.
func RandSwaps[T any](p *PRNG, list []T) {
	for i := range list {
		j := p.RandInt(uint32(len(list)))
		list[i], list[j] = list[j], list[i]
	}
}

// RandIndexWeight draws a weighted random index: the smallest i such
// that the cumulative sum of weights[0..=i] exceeds a uniformly chosen
// threshold in [0, sum(weights)). Returns ok=false if weights is empty
// or every weight is zero.
func (p *PRNG) RandIndexWeight(weights []uint32) (idx int, ok bool) {
	var total uint32
	for _, w := range weights {
		total += w
	}

	threshold := p.RandInt(total)
	if total == 0 {
		return 0, false
	}
	var cumulative uint32
	for i, w := range weights {
		cumulative += w
		if cumulative > threshold {
			return i, true
		}
	}
	return 0, false
}
