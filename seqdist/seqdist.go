// Package seqdist provides distance and similarity scoring between sequences
// of comparable elements (runes, tokens, or any comparable type).
//
// Every distance has a companion ratio that normalizes it into [0,1], where 1
// means identical. Ratios of two empty sequences are defined as 1.
//
// All functions are case-sensitive when used on text. Normalize casing before
// scoring if capitalization differences should not count as mismatches. The
// scores are heuristics, not guarantees of semantic equality.
package seqdist

import "fmt"

// Edit computes the Levenshtein distance between a and b: the minimum number
// of single-element insertions, deletions, or substitutions needed to
// transform one into the other. Symmetric in its arguments.
//
// Uses the two-row dynamic programming formulation, so memory is
// O(min(len(a), len(b))).
func Edit[E comparable](a, b []E) int {
	// Keep b the shorter operand to bound the row width.
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i, ea := range a {
		curr[0] = i + 1
		for j, eb := range b {
			insertion := prev[j+1] + 1
			deletion := curr[j] + 1
			substitution := prev[j]
			if ea != eb {
				substitution++
			}
			curr[j+1] = min(insertion, deletion, substitution)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// EditRatio normalizes the edit distance into [0,1]. Returns 1 for two empty
// sequences.
func EditRatio[E comparable](a, b []E) float64 {
	maxLen := max(len(a), len(b))
	if maxLen == 0 {
		return 1
	}
	return float64(maxLen-Edit(a, b)) / float64(maxLen)
}

// Hamming counts positionally mismatched elements over the overlapping prefix
// of a and b. When countLengthDiff is true, the absolute length difference is
// added on top, penalizing length mismatch.
//
// Not memoized anywhere: hashing the inputs would cost about as much as the
// comparison itself.
func Hamming[E comparable](a, b []E, countLengthDiff bool) int {
	n := min(len(a), len(b))
	dist := 0
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			dist++
		}
	}
	if countLengthDiff {
		dist += max(len(a), len(b)) - n
	}
	return dist
}

// HammingRatio normalizes the Hamming distance into [0,1]. The maximum
// possible distance is max(len) when countLengthDiff is true, else min(len).
// Returns 1 when the maximum possible distance is zero.
func HammingRatio[E comparable](a, b []E, countLengthDiff bool) float64 {
	var maxDist int
	if countLengthDiff {
		maxDist = max(len(a), len(b))
	} else {
		maxDist = min(len(a), len(b))
	}
	if maxDist == 0 {
		return 1
	}
	return float64(maxDist-Hamming(a, b, countLengthDiff)) / float64(maxDist)
}

// Frequency computes the multiset distance between a and b: the sum of
// |count_a(e) - count_b(e)| over every distinct element of either sequence.
// Order-insensitive, so anagrams score 0. The maximum possible value is
// len(a)+len(b).
func Frequency[E comparable](a, b []E) int {
	counts := make(map[E]int, len(a)+len(b))
	for _, e := range a {
		counts[e]++
	}
	for _, e := range b {
		counts[e]--
	}

	dist := 0
	for _, c := range counts {
		if c < 0 {
			c = -c
		}
		dist += c
	}
	return dist
}

// FrequencyRatio normalizes the frequency distance into [0,1]. Returns 1 for
// two empty sequences.
func FrequencyRatio[E comparable](a, b []E) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 1
	}
	return float64(total-Frequency(a, b)) / float64(total)
}

// Kind identifies a scoring algorithm family.
type Kind int

const (
	KindEdit Kind = iota
	KindHamming
	KindFrequency
)

func (k Kind) String() string {
	switch k {
	case KindEdit:
		return "Edit"
	case KindHamming:
		return "Hamming"
	case KindFrequency:
		return "Frequency"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Func is a ratio-style scoring function over two sequences.
type Func[E comparable] func(a, b []E) float64

// Provider returns the ratio function for the given kind. The Hamming variant
// counts the length difference.
func Provider[E comparable](k Kind) (Func[E], error) {
	switch k {
	case KindEdit:
		return EditRatio[E], nil
	case KindHamming:
		return func(a, b []E) float64 { return HammingRatio(a, b, true) }, nil
	case KindFrequency:
		return FrequencyRatio[E], nil
	default:
		return nil, fmt.Errorf("unsupported kind: %v", k)
	}
}
