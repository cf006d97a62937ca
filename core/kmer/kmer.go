// core/kmer/kmer.go
package kmer

// Normalize returns an uppercased copy of seq. Only ASCII letters change;
// every other byte (including IUPAC codes and gaps) is kept as-is.
func Normalize(seq []byte) []byte {
	out := make([]byte, len(seq))
	for i, b := range seq {
		out[i] = upper(b)
	}
	return out
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// CountDistinct returns the number of distinct k-length substrings of seq,
// compared case-insensitively. Windows start at 0..len(seq)-k with step 1.
// A sequence shorter than k has no k-mers and yields 0; so does k < 1.
//
// Ambiguity codes such as 'N' are ordinary symbols here.
func CountDistinct(seq []byte, k int) int {
	if k < 1 || len(seq) < k {
		return 0
	}
	norm := Normalize(seq)
	seen := make(map[string]struct{}, len(norm)-k+1)
	for i := 0; i+k <= len(norm); i++ {
		seen[string(norm[i:i+k])] = struct{}{}
	}
	return len(seen)
}

// Positions returns the number of k-mer start positions in a span of length n.
func Positions(n, k int) int {
	if k < 1 || n < k {
		return 0
	}
	return n - k + 1
}
