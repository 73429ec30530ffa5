package seqdist

// Offset alignment: score the two sequences at every left-padding offset of
// either operand and keep the best result. Padding uses a placeholder element
// that must not equal any real input element, so padded positions always
// mismatch. This tolerates prefix insertions and deletions at
// O((len(s1)+len(s2)) * cost(fn)) instead of full alignment cost.

// OffsetMinimum returns the minimum score of fn across all left-padding
// offsets. Use with distance-style functions where lower means more similar.
func OffsetMinimum[E comparable](s1, s2 []E, fn Func[E], placeholder E) float64 {
	best := fn(s1, s2)
	for _, score := range offsetScores(s1, s2, fn, placeholder) {
		if score < best {
			best = score
		}
	}
	return best
}

// OffsetMaximum returns the maximum score of fn across all left-padding
// offsets. Use with ratio-style functions where higher means more similar.
func OffsetMaximum[E comparable](s1, s2 []E, fn Func[E], placeholder E) float64 {
	best := fn(s1, s2)
	for _, score := range offsetScores(s1, s2, fn, placeholder) {
		if score > best {
			best = score
		}
	}
	return best
}

// offsetScores evaluates fn with s2 shifted right by up to len(s2)-1
// placeholder elements, and s1 shifted right by up to len(s1)-1.
func offsetScores[E comparable](s1, s2 []E, fn Func[E], placeholder E) []float64 {
	scores := make([]float64, 0, len(s1)+len(s2))
	for i := 1; i < len(s2); i++ {
		scores = append(scores, fn(s1, padded(s2, i, placeholder)))
	}
	for i := 1; i < len(s1); i++ {
		scores = append(scores, fn(padded(s1, i, placeholder), s2))
	}
	return scores
}

func padded[E comparable](s []E, n int, placeholder E) []E {
	out := make([]E, 0, n+len(s))
	for i := 0; i < n; i++ {
		out = append(out, placeholder)
	}
	return append(out, s...)
}
