package tokenindex

import "github.com/katalvlaran/collate/token"

// Len returns the length of the token array.
func (x *Index) Len() int { return len(x.tokens) }

// Comparator returns the comparator the index was built with.
func (x *Index) Comparator() token.Comparator { return x.cmp }

// Witnesses returns the indexed witnesses in token-array order.
func (x *Index) Witnesses() []*token.Witness { return x.witnesses }

// TokenArray returns the concatenated tokens of all witnesses.
// The slice is shared; callers must not modify it.
func (x *Index) TokenArray() []*token.Token { return x.tokens }

// SuffixArray returns the suffix array. The slice is shared.
func (x *Index) SuffixArray() []int { return x.sa }

// LCPArray returns the LCP array, with LCPArray()[0] == -1. The slice is shared.
func (x *Index) LCPArray() []int { return x.lcp }

// Intervals returns the LCP intervals ordered by Start, then Length.
// The slice is shared.
func (x *Index) Intervals() []Interval { return x.intervals }

// StartOf returns the token-array offset of the first token of w.
func (x *Index) StartOf(w *token.Witness) (int, bool) {
	start, ok := x.starts[w]
	return start, ok
}

// Covering returns every interval occurrence containing token-array position
// pos, longest phrase first. It returns nil for positions outside any repeat.
func (x *Index) Covering(pos int) []Occurrence {
	if pos < 0 || pos >= len(x.covering) {
		return nil
	}

	return x.covering[pos]
}

// Positions returns, for every occurrence of the phrase of interval n, the
// token-array position of the token at offset inside the phrase. Positions
// are in suffix-array order.
func (x *Index) Positions(n, offset int) []int {
	iv := x.intervals[n]
	out := make([]int, 0, iv.Depth())
	for s := iv.Start; s <= iv.End; s++ {
		out = append(out, x.sa[s]+offset)
	}

	return out
}

// Phrase returns the tokens of the first occurrence of interval n's phrase.
func (x *Index) Phrase(n int) []*token.Token {
	iv := x.intervals[n]
	start := x.sa[iv.Start]

	return x.tokens[start : start+iv.Length]
}
