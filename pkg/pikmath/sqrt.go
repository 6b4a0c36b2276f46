package pikmath

import "math"

// expectedBase and expectedDec are the two 32-entry lookup tables used by
// Dolphin's emulation of the PowerPC frsqrte instruction. Transcribed
// verbatim; do not "clean up" the magic numbers, they are the hardware's.
var expectedBase = [32]int64{
	0x3ffa000, 0x3c29000, 0x38aa000, 0x3572000,
	0x3279000, 0x2fb7000, 0x2d26000, 0x2ac0000,
	0x2881000, 0x2665000, 0x2468000, 0x2287000,
	0x20c1000, 0x1f12000, 0x1d79000, 0x1bf4000,
	0x1a7e800, 0x17cb800, 0x1552800, 0x130c000,
	0x10f2000, 0x0eff000, 0x0d2e000, 0x0b7c000,
	0x09e5000, 0x0867000, 0x06ff000, 0x05ab800,
	0x046a000, 0x0339800, 0x0218800, 0x0105800,
}

var expectedDec = [32]int64{
	0x7a4, 0x700, 0x670, 0x5f2,
	0x584, 0x524, 0x4cc, 0x47e,
	0x43a, 0x3fa, 0x3c2, 0x38e,
	0x35e, 0x332, 0x30a, 0x2e6,
	0x568, 0x4f3, 0x48d, 0x435,
	0x3e7, 0x3a2, 0x365, 0x32e,
	0x2fc, 0x2d0, 0x2a8, 0x283,
	0x261, 0x243, 0x226, 0x20b,
}

// Sqrt computes Pikmin 2's square root: val * frsqrte(val), with frsqrte
// evaluated in f64 precision before the result is narrowed back to f32.
// This deliberately does not call math.Sqrt; the frsqrte approximation is
// only accurate to within 1/32 of the true inverse square root, and the
// generator's scores and distances must match the game's rounding, not
// the mathematically exact answer.
func Sqrt(val float32) float32 {
	return float32(float64(val) * fastInverseSqrt(float64(val)))
}

// fastInverseSqrt reproduces the PowerPC frsqrte instruction as emulated
// by Dolphin. See expectedBase/expectedDec above for the hardware tables
// it indexes into.
func fastInverseSqrt(val float64) float64 {
	vali := math.Float64bits(val)

	mantissa := vali & ((1 << 52) - 1)
	sign := vali & (1 << 63)
	exponent := vali & (0x7FF << 52)

	if mantissa == 0 && exponent == 0 {
		return 0.0
	}

	if exponent == (0x7FF << 52) {
		if mantissa == 0 {
			if sign != 0 {
				return math.NaN()
			}
			return 0.0
		}
		return val
	}

	if sign != 0 {
		return math.NaN()
	}

	if exponent == 0 {
		for {
			exponent -= 1 << 52
			mantissa <<= 1
			if mantissa&(1<<52) != 0 {
				break
			}
		}
		mantissa &= (1 << 52) - 1
		exponent += 1 << 52
	}

	oddExponent := exponent&(1<<52) == 0
	exponent = ((uint64(0x3FF) << 52) - ((exponent - (uint64(0x3FE) << 52)) >> 1)) & (0x7FF << 52)

	i := int64(mantissa >> 37)
	vali = sign | exponent

	index := i / 2048
	if oddExponent {
		index += 16
	}

	vali |= uint64(expectedBase[index]-expectedDec[index]*(i%2048)) << 26

	return math.Float64frombits(vali)
}
