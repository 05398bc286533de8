package tokenindex

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/collate/token"
)

// Index is the token index of one collation run. It is immutable once built.
type Index struct {
	cmp       token.Comparator
	witnesses []*token.Witness
	starts    map[*token.Witness]int

	tokens []*token.Token // token array: all witnesses concatenated in order
	limit  []int          // limit[p]: exclusive end of the witness owning position p

	sa        []int
	lcp       []int
	intervals []Interval
	covering  [][]Occurrence // by token-array position, longest phrase first
}

// Build creates the token index for witnesses under cmp.
//
// Algorithm Outline:
//  1. Validate configuration (comparator, witness list, witness contents).
//  2. Concatenate all witnesses into the token array; remember each start offset.
//  3. Sort suffixes under cmp. A suffix ends at the end of its witness, so a
//     shared prefix never straddles two witnesses. Equal suffixes keep
//     token-array order.
//  4. LCP[i] = common prefix length of suffixes SA[i-1] and SA[i]; LCP[0] = -1.
//  5. Extract LCP intervals bottom-up with a stack of open intervals, then sort
//     them by ascending Start, then ascending Length.
//  6. Record, for every position, each interval whose phrase covers it.
//
// Complexity:
//
//	Time   = O(n log n · L) for the comparison sort, where L is the longest repeat
//	Memory = O(n + Σ depth·length over intervals)
//
// Errors:
//   - ErrNilComparator, ErrNoWitnesses, ErrEmptyWitness, ErrDuplicateWitness.
func Build(cmp token.Comparator, witnesses []*token.Witness) (*Index, error) {
	// 1) Validate
	if cmp == nil {
		return nil, ErrNilComparator
	}
	if len(witnesses) == 0 {
		return nil, ErrNoWitnesses
	}
	total := 0
	starts := make(map[*token.Witness]int, len(witnesses))
	ids := make(map[string]struct{}, len(witnesses))
	for i, w := range witnesses {
		if w == nil || len(w.Tokens) == 0 {
			return nil, fmt.Errorf("%w: witness #%d %v", ErrEmptyWitness, i, w)
		}
		if _, dup := ids[w.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateWitness, w.ID)
		}
		ids[w.ID] = struct{}{}
		starts[w] = total
		total += len(w.Tokens)
	}

	// 2) Token array
	idx := &Index{
		cmp:       cmp,
		witnesses: append([]*token.Witness(nil), witnesses...),
		starts:    starts,
		tokens:    make([]*token.Token, 0, total),
		limit:     make([]int, 0, total),
	}
	for _, w := range witnesses {
		end := starts[w] + len(w.Tokens)
		for _, t := range w.Tokens {
			idx.tokens = append(idx.tokens, t)
			idx.limit = append(idx.limit, end)
		}
	}

	// 3-6)
	idx.buildSuffixArray()
	idx.buildLCPArray()
	idx.buildIntervals()
	idx.buildCovering()

	return idx, nil
}

// buildSuffixArray sorts all suffixes under the comparator.
func (x *Index) buildSuffixArray() {
	x.sa = make([]int, len(x.tokens))
	for i := range x.sa {
		x.sa[i] = i
	}
	slices.SortStableFunc(x.sa, x.compareSuffixes)
}

// compareSuffixes orders the suffixes starting at i and j. A suffix that is a
// proper prefix of the other sorts first.
func (x *Index) compareSuffixes(i, j int) int {
	li, lj := x.limit[i]-i, x.limit[j]-j
	n := min(li, lj)
	for k := 0; k < n; k++ {
		if c := x.cmp(x.tokens[i+k], x.tokens[j+k]); c != 0 {
			return c
		}
	}

	return li - lj
}

// commonPrefix returns the number of leading equivalent tokens of suffixes i and j.
func (x *Index) commonPrefix(i, j int) int {
	n := min(x.limit[i]-i, x.limit[j]-j)
	k := 0
	for k < n && x.cmp(x.tokens[i+k], x.tokens[j+k]) == 0 {
		k++
	}

	return k
}

// buildLCPArray fills lcp by comparing lexicographically adjacent suffixes.
func (x *Index) buildLCPArray() {
	x.lcp = make([]int, len(x.sa))
	x.lcp[0] = -1
	for i := 1; i < len(x.sa); i++ {
		x.lcp[i] = x.commonPrefix(x.sa[i-1], x.sa[i])
	}
}

// buildIntervals derives all LCP intervals from the LCP array.
//
// An interval opens where the LCP rises above the value of the enclosing
// open interval and closes where it drops below its own length. A virtual
// LCP of 0 past the last index closes whatever is still open.
func (x *Index) buildIntervals() {
	type open struct{ start, length int }
	var stack []open
	n := len(x.lcp)

	for i := 1; i <= n; i++ {
		l := 0
		if i < n {
			l = x.lcp[i]
		}
		start := i - 1
		for len(stack) > 0 && stack[len(stack)-1].length > l {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			x.intervals = append(x.intervals, Interval{Start: top.start, End: i - 1, Length: top.length})
			start = top.start
		}
		if l > 0 && (len(stack) == 0 || stack[len(stack)-1].length < l) {
			stack = append(stack, open{start: start, length: l})
		}
	}

	slices.SortStableFunc(x.intervals, func(a, b Interval) int {
		if a.Start != b.Start {
			return a.Start - b.Start
		}
		return a.Length - b.Length
	})
}

// buildCovering records, for every token position, the intervals whose
// phrase occurrences contain it.
func (x *Index) buildCovering() {
	x.covering = make([][]Occurrence, len(x.tokens))
	for n, iv := range x.intervals {
		for s := iv.Start; s <= iv.End; s++ {
			base := x.sa[s]
			for k := 0; k < iv.Length; k++ {
				x.covering[base+k] = append(x.covering[base+k], Occurrence{Interval: n, Offset: k})
			}
		}
	}
	for _, occ := range x.covering {
		slices.SortStableFunc(occ, func(a, b Occurrence) int {
			return x.intervals[b.Interval].Length - x.intervals[a.Interval].Length
		})
	}
}
