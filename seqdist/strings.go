package seqdist

// String convenience wrappers. All of them compare runes, not bytes, so
// multi-byte UTF-8 text scores by characters.

// EditDistance returns the Levenshtein distance between two strings.
func EditDistance(a, b string) int {
	return Edit([]rune(a), []rune(b))
}

// EditRatioString returns the normalized edit similarity between two strings.
func EditRatioString(a, b string) float64 {
	return EditRatio([]rune(a), []rune(b))
}

// HammingDistance returns the Hamming distance between two strings.
func HammingDistance(a, b string, countLengthDiff bool) int {
	return Hamming([]rune(a), []rune(b), countLengthDiff)
}

// HammingRatioString returns the normalized Hamming similarity between two
// strings.
func HammingRatioString(a, b string, countLengthDiff bool) float64 {
	return HammingRatio([]rune(a), []rune(b), countLengthDiff)
}

// FrequencyDistance returns the multiset distance between two strings.
func FrequencyDistance(a, b string) int {
	return Frequency([]rune(a), []rune(b))
}

// FrequencyRatioString returns the normalized multiset similarity between two
// strings.
func FrequencyRatioString(a, b string) float64 {
	return FrequencyRatio([]rune(a), []rune(b))
}

// CompositeRatio blends the frequency and Hamming ratios of two strings into
// a single similarity: (max(scores) + sum(scores)) / 2, which rewards a
// strong signal from either algorithm while still crediting agreement.
// Useful for matching names that abbreviate or reorder words.
func CompositeRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	f := FrequencyRatio(ra, rb)
	h := HammingRatio(ra, rb, false)
	return (max(f, h) + f + h) / 2
}
