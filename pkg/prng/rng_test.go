package prng

import "testing"

func TestRandRawSequence(t *testing.T) {
	p := New(0x12345678)
	// First few outputs are fixed by the LCG constants; regression-pin
	// them so any change to the multiplier/increment/shift is caught.
	first := p.RandRaw()
	second := p.RandRaw()
	if first != 2929 || second != 28487 {
		t.Fatalf("first RandRaw outputs = %d, %d, want 2929, 28487", first, second)
	}
	if first == second {
		t.Fatalf("consecutive RandRaw calls should (almost certainly) differ, got %d twice", first)
	}
	if p.Calls() != 2 {
		t.Fatalf("Calls() = %d, want 2", p.Calls())
	}
}

func TestRandIntZeroMax(t *testing.T) {
	p := New(1)
	if got := p.RandInt(0); got != 0 {
		t.Fatalf("RandInt(0) = %d, want 0", got)
	}
}

func TestRandIntBounded(t *testing.T) {
	p := New(0xCAFEBABE)
	for i := 0; i < 1000; i++ {
		if got := p.RandInt(10); got >= 10 {
			t.Fatalf("RandInt(10) = %d, want < 10", got)
		}
	}
}

func TestRandF32Range(t *testing.T) {
	p := New(42)
	for i := 0; i < 1000; i++ {
		v := p.RandF32()
		if v < 0 || v >= 1.0 {
			t.Fatalf("RandF32() = %v, want in [0,1)", v)
		}
	}
}

func TestRandBacksPreservesLength(t *testing.T) {
	p := New(7)
	list := []int{1, 2, 3, 4, 5}
	out := RandBacks(p, list)
	if len(out) != 5 {
		t.Fatalf("len(RandBacks(list)) = %d, want 5", len(out))
	}
	seen := map[int]bool{}
	for _, v := range out {
		seen[v] = true
	}
	for _, v := range []int{1, 2, 3, 4, 5} {
		if !seen[v] {
			t.Fatalf("RandBacks dropped element %d", v)
		}
	}
}

func TestRandSwapsConsumesOneCallPerElement(t *testing.T) {
	p := New(99)
	list := make([]int, 20)
	for i := range list {
		list[i] = i
	}
	before := p.Calls()
	RandSwaps(p, list)
	if got := p.Calls() - before; got != uint64(len(list)) {
		t.Fatalf("RandSwaps consumed %d calls, want %d", got, len(list))
	}
}

func TestRandIndexWeightAllZero(t *testing.T) {
	p := New(3)
	_, ok := p.RandIndexWeight([]uint32{0, 0, 0})
	if ok {
		t.Fatalf("RandIndexWeight(all zero) should report ok=false")
	}
}

func TestRandIndexWeightEmpty(t *testing.T) {
	p := New(3)
	_, ok := p.RandIndexWeight(nil)
	if ok {
		t.Fatalf("RandIndexWeight(nil) should report ok=false")
	}
}

func TestRandIndexWeightDistribution(t *testing.T) {
	p := New(123456)
	counts := make([]int, 3)
	weights := []uint32{1, 0, 3}
	for i := 0; i < 4000; i++ {
		idx, ok := p.RandIndexWeight(weights)
		if !ok {
			t.Fatalf("RandIndexWeight unexpectedly reported ok=false")
		}
		counts[idx]++
	}
	if counts[1] != 0 {
		t.Fatalf("zero-weight index 1 was selected %d times", counts[1])
	}
	if counts[0] == 0 || counts[2] == 0 {
		t.Fatalf("nonzero-weight indices should both be reachable, got %v", counts)
	}
}

func TestParseSeedHex(t *testing.T) {
	cases := []struct {
		in   string
		want Seed
		ok   bool
	}{
		{"B5E72294", 0xB5E72294, true},
		{"0xb5e72294", 0xB5E72294, true},
		{"0X17531C52", 0x17531C52, true},
		{"not-hex!!", 0, false},
		{"ABCD", 0, false},
		{"ABCDEF123", 0, false},
	}
	for _, c := range cases {
		got, err := ParseSeed(c.in)
		if c.ok && err != nil {
			t.Errorf("ParseSeed(%q) returned error %v, want success", c.in, err)
		}
		if !c.ok && err == nil {
			t.Errorf("ParseSeed(%q) = %v, want error", c.in, got)
		}
		if c.ok && got != c.want {
			t.Errorf("ParseSeed(%q) = %#x, want %#x", c.in, uint32(got), uint32(c.want))
		}
	}
}

func TestParseSeedRandom(t *testing.T) {
	a, err := ParseSeed("random")
	if err != nil {
		t.Fatalf("ParseSeed(random) error: %v", err)
	}
	b, err := ParseSeed("RANDOM")
	if err != nil {
		t.Fatalf("ParseSeed(RANDOM) error: %v", err)
	}
	// a and b are not compared: two independent random seeds may
	// collide. This only exercises the random path for both spellings.
	_ = a
	_ = b
}
