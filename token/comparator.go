package token

import "strings"

// Comparator orders two tokens. Zero means the tokens are equivalent for
// alignment purposes; the sign otherwise gives a total order used to sort
// suffixes.
type Comparator func(a, b *Token) int

// EqualityComparator compares normalized forms exactly.
func EqualityComparator(a, b *Token) int {
	return strings.Compare(a.Normalized, b.Normalized)
}

// EditDistanceComparator treats normalized forms within maxDistance edits of
// each other as equivalent. Non-equivalent forms are ordered lexicographically.
//
// The relation is not transitive for maxDistance > 0, so suffix order among
// near-equal tokens depends on input order. Use it only when spelling variation
// matters more than a strict ordering.
func EditDistanceComparator(maxDistance int) Comparator {
	if maxDistance <= 0 {
		return EqualityComparator
	}

	return func(a, b *Token) int {
		if a.Normalized == b.Normalized {
			return 0
		}
		if Levenshtein(a.Normalized, b.Normalized) <= maxDistance {
			return 0
		}

		return strings.Compare(a.Normalized, b.Normalized)
	}
}

// Levenshtein returns the edit distance between a and b over runes.
// Two rolling rows keep memory at O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}
