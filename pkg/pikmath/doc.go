// Package pikmath provides the game-faithful math primitives the cave
// generator depends on. Pikmin 2 runs on the Broadway/Gekko PowerPC CPU,
// whose frsqrte instruction computes an approximate reciprocal square
// root via a hardware lookup table rather than a true square root. Every
// distance and scoring calculation in the generator ultimately bottoms
// out in Sqrt, so reproducing frsqrte's rounding behaviour bit-for-bit
// is what makes generated layouts match the game's set-seed output.
package pikmath
