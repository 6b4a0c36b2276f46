package pikmath

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestSqrtZero(t *testing.T) {
	if got := Sqrt(0); got != 0 {
		t.Fatalf("Sqrt(0) = %v, want 0", got)
	}
}

func TestSqrtNegativeIsNaN(t *testing.T) {
	if got := Sqrt(-4); !math.IsNaN(float64(got)) {
		t.Fatalf("Sqrt(-4) = %v, want NaN", got)
	}
}

func TestSqrtWithinTolerance(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Float32Range(0, 50000).Draw(t, "x")
		got := Sqrt(x)
		want := float32(math.Sqrt(float64(x)))
		if want == 0 {
			if got != 0 {
				t.Fatalf("Sqrt(%v) = %v, want 0", x, got)
			}
			return
		}
		// frsqrte is only accurate to within 1/32 of the true inverse
		// square root; Sqrt = val*frsqrte(val) inherits a comparable
		// relative tolerance.
		rel := math.Abs(float64(got-want)) / float64(want)
		if rel > 1.0/16.0 {
			t.Fatalf("Sqrt(%v) = %v, want ~%v (rel err %v)", x, got, want, rel)
		}
	})
}

func TestFastInverseSqrtSubnormal(t *testing.T) {
	// The smallest positive subnormal float64; exercises the
	// normalize-by-left-shift loop.
	x := math.Float64frombits(1)
	got := fastInverseSqrt(x)
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("fastInverseSqrt(subnormal) = %v, want finite", got)
	}
}

func TestFastInverseSqrtPositiveInf(t *testing.T) {
	if got := fastInverseSqrt(math.Inf(1)); got != 0 {
		t.Fatalf("fastInverseSqrt(+Inf) = %v, want 0", got)
	}
}

func TestFastInverseSqrtNaNPropagates(t *testing.T) {
	if got := fastInverseSqrt(math.NaN()); !math.IsNaN(got) {
		t.Fatalf("fastInverseSqrt(NaN) = %v, want NaN", got)
	}
}
