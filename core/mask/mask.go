// core/mask/mask.go
package mask

import (
	"kcomplex-core/complexity"
	"kcomplex-core/kmer"
)

// MaskSymbol replaces every masked base.
const MaskSymbol = 'N'

// Interval is a half-open [Start,End) run of masked positions.
type Interval struct {
	Start int
	End   int
}

// Mask is the set of low-complexity positions of one sequence.
type Mask struct {
	bits []bool
}

// Len returns the length of the sequence the mask was computed for.
func (m Mask) Len() int { return len(m.bits) }

// Masked reports whether position i is masked. Out-of-range positions are not.
func (m Mask) Masked(i int) bool {
	return i >= 0 && i < len(m.bits) && m.bits[i]
}

// Count returns the number of masked positions.
func (m Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Positions returns the masked positions in ascending order.
func (m Mask) Positions() []int {
	var out []int
	for i, b := range m.bits {
		if b {
			out = append(out, i)
		}
	}
	return out
}

// Intervals returns maximal runs of masked positions.
func (m Mask) Intervals() []Interval {
	var out []Interval
	start := -1
	for i, b := range m.bits {
		switch {
		case b && start < 0:
			start = i
		case !b && start >= 0:
			out = append(out, Interval{Start: start, End: i})
			start = -1
		}
	}
	if start >= 0 {
		out = append(out, Interval{Start: start, End: len(m.bits)})
	}
	return out
}

// Apply returns a copy of seq with masked positions replaced by MaskSymbol.
// Unmasked bases keep their original case.
func (m Mask) Apply(seq []byte) []byte {
	out := append([]byte(nil), seq...)
	for i := range out {
		if m.Masked(i) {
			out[i] = MaskSymbol
		}
	}
	return out
}

// Compute slides a window of windowSize bases over seq with step 1 and marks
// every position covered by a window whose complexity (k-mers restricted to
// that window) is strictly below threshold.
//
// A sequence shorter than windowSize is scored once as a single window.
// An empty sequence, k < 1 or windowSize < 1 yields an empty mask.
func Compute(seq []byte, k, windowSize int, threshold float64) Mask {
	m := Mask{bits: make([]bool, len(seq))}
	if len(seq) == 0 || k < 1 || windowSize < 1 {
		return m
	}
	if len(seq) < windowSize {
		if complexity.Compute(seq, k).Low(threshold) {
			m.mark(0, len(seq))
		}
		return m
	}

	norm := kmer.Normalize(seq)
	last := len(norm) - windowSize
	if windowSize < k {
		// No k-mer fits inside any window; every window scores 0.
		if complexity.FromCount(0, windowSize).Low(threshold) {
			m.mark(0, len(norm))
		}
		return m
	}

	c := kmer.NewCounter(k)
	c.Fill(norm[:windowSize])
	markedTo := 0
	for start := 0; start <= last; start++ {
		if start > 0 {
			c.Remove(norm[start-1 : start-1+k])
			c.Add(norm[start+windowSize-k : start+windowSize])
		}
		if complexity.FromCount(c.Distinct(), windowSize).Low(threshold) {
			from := start
			if markedTo > from {
				from = markedTo
			}
			m.mark(from, start+windowSize)
			markedTo = start + windowSize
		}
	}
	return m
}

func (m Mask) mark(from, to int) {
	for i := from; i < to; i++ {
		m.bits[i] = true
	}
}
