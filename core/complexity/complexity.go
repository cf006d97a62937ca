// Package complexity turns distinct k-mer counts into a normalized
// lexical-complexity score.
//
// The score of a span is distinct_kmers / len(span). The divisor is the
// span's base length, not its number of k-mer positions; deployed
// thresholds (e.g. 0.55) assume exactly this convention.
package complexity

import (
	"math"

	"kcomplex-core/kmer"
)

// Score is the complexity of one span.
type Score struct {
	Distinct int     // distinct k-mers in the span
	Length   int     // span length in bases
	Value    float64 // Distinct/Length; NaN when undefined
	Defined  bool    // false only for zero-length spans
}

// Compute scores span with k-mers of length k.
func Compute(span []byte, k int) Score {
	return FromCount(kmer.CountDistinct(span, k), len(span))
}

// FromCount builds a Score from a precomputed distinct count.
func FromCount(distinct, length int) Score {
	if length == 0 {
		return Score{Distinct: 0, Length: 0, Value: math.NaN(), Defined: false}
	}
	return Score{
		Distinct: distinct,
		Length:   length,
		Value:    float64(distinct) / float64(length),
		Defined:  true,
	}
}

// Low reports whether the span is low complexity at threshold t (strict).
// Undefined scores are never low.
func (s Score) Low(t float64) bool {
	return s.Defined && s.Value < t
}

// Passes reports whether the span survives a filter at threshold t
// (inclusive). Undefined scores always pass.
func (s Score) Passes(t float64) bool {
	return !s.Low(t)
}
