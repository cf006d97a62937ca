// core/kmer/counter.go
package kmer

// Counter is a k-mer multiset over a sliding span. Callers add the k-mer
// entering the span and remove the one leaving it, so a scan costs one map
// update per step instead of recounting every window.
//
// Keys must already be normalized (see Normalize).
type Counter struct {
	k      int
	counts map[string]int
}

// NewCounter returns an empty Counter for k-mers of length k.
func NewCounter(k int) *Counter {
	return &Counter{k: k, counts: make(map[string]int)}
}

// K returns the k-mer length the counter was built for.
func (c *Counter) K() int { return c.k }

// Add records one occurrence of km.
func (c *Counter) Add(km []byte) {
	c.counts[string(km)]++
}

// Remove drops one occurrence of km. Removing an absent k-mer is a no-op.
func (c *Counter) Remove(km []byte) {
	key := string(km)
	n, ok := c.counts[key]
	if !ok {
		return
	}
	if n <= 1 {
		delete(c.counts, key)
		return
	}
	c.counts[key] = n - 1
}

// Distinct returns the number of k-mers with a positive count.
func (c *Counter) Distinct() int { return len(c.counts) }

// Reset empties the counter, keeping k.
func (c *Counter) Reset() {
	for key := range c.counts {
		delete(c.counts, key)
	}
}

// Fill resets the counter and loads every k-mer of the normalized span.
func (c *Counter) Fill(span []byte) {
	c.Reset()
	if c.k < 1 {
		return
	}
	for i := 0; i+c.k <= len(span); i++ {
		c.Add(span[i : i+c.k])
	}
}
