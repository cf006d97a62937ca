package complexity

import (
	"math"
	"math/rand"
	"testing"
)

func TestCompute_RepeatUnit(t *testing.T) {
	s := Compute([]byte("ACGTACGTACGT"), 4)
	if s.Distinct != 4 || s.Length != 12 || !s.Defined {
		t.Fatalf("unexpected score %+v", s)
	}
	if math.Abs(s.Value-4.0/12.0) > 1e-12 {
		t.Fatalf("value=%v want 0.3333", s.Value)
	}
}

func TestCompute_Homopolymer(t *testing.T) {
	s := Compute([]byte("AAAAAAAAAAAA"), 4)
	if s.Distinct != 1 || math.Abs(s.Value-1.0/12.0) > 1e-12 {
		t.Fatalf("unexpected score %+v", s)
	}
	if !s.Low(0.55) {
		t.Fatalf("homopolymer should be low complexity at 0.55")
	}
}

func TestCompute_EmptyIsUndefined(t *testing.T) {
	s := Compute(nil, 4)
	if s.Defined {
		t.Fatalf("empty span must be undefined")
	}
	if !math.IsNaN(s.Value) {
		t.Fatalf("undefined value should be NaN, got %v", s.Value)
	}
	if s.Low(1) {
		t.Fatalf("undefined score must never be low")
	}
	if !s.Passes(1) {
		t.Fatalf("undefined score must pass any filter")
	}
}

func TestCompute_ShorterThanK(t *testing.T) {
	s := Compute([]byte("ACG"), 4)
	if !s.Defined || s.Distinct != 0 || s.Value != 0 {
		t.Fatalf("short span should score 0, got %+v", s)
	}
	if !s.Low(0.01) {
		t.Fatalf("zero score must be low at any positive threshold")
	}
	if s.Low(0) {
		t.Fatalf("nothing is below a zero threshold")
	}
}

func TestPasses_InclusiveBoundary(t *testing.T) {
	s := FromCount(11, 20) // exactly 0.55
	if !s.Passes(0.55) {
		t.Fatalf("score equal to threshold must pass")
	}
	if s.Low(0.55) {
		t.Fatalf("score equal to threshold is not low")
	}
	if s.Passes(0.56) {
		t.Fatalf("0.55 must fail a 0.56 threshold")
	}
}

func TestCompute_RangeProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	alpha := []byte("ACGTN")
	for i := 0; i < 300; i++ {
		n := 1 + rng.Intn(60)
		seq := make([]byte, n)
		for j := range seq {
			seq[j] = alpha[rng.Intn(len(alpha))]
		}
		for k := 1; k <= 6; k++ {
			s := Compute(seq, k)
			if s.Value < 0 || s.Value > 1 {
				t.Fatalf("score %v out of range (seq=%q k=%d)", s.Value, seq, k)
			}
		}
	}
}
