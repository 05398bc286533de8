// Package tokenindex defines the token index: token array, suffix array, LCP
// array and LCP intervals over all witnesses of a collation run.
package tokenindex

import "errors"

// Sentinel errors returned by Build. All of them are configuration errors and
// are reported before any index structure is allocated.
var (
	// ErrNoWitnesses indicates that the witness list is empty.
	ErrNoWitnesses = errors.New("tokenindex: no witnesses")

	// ErrEmptyWitness indicates a nil witness or a witness without tokens.
	ErrEmptyWitness = errors.New("tokenindex: witness has no tokens")

	// ErrDuplicateWitness indicates two witnesses share an ID.
	ErrDuplicateWitness = errors.New("tokenindex: duplicate witness")

	// ErrNilComparator indicates that no token comparator was supplied.
	ErrNilComparator = errors.New("tokenindex: comparator is nil")
)

// Interval is an LCP interval: the suffix-array range [Start, End] whose
// suffixes share a prefix of Length tokens.
//
// Intervals nest: a child covers a sub-range of its parent with a larger
// Length. Every interval covers at least two suffixes.
type Interval struct {
	// Start is the first suffix-array index of the interval.
	Start int

	// End is the last suffix-array index of the interval (inclusive).
	End int

	// Length is the number of tokens of the shared prefix (the phrase).
	Length int
}

// Depth returns the number of suffixes sharing the prefix, i.e. how often the
// phrase occurs across all witnesses.
func (iv Interval) Depth() int { return iv.End - iv.Start + 1 }

// Occurrence places a token-array position inside an interval's phrase.
type Occurrence struct {
	// Interval indexes Index.Intervals().
	Interval int

	// Offset is the position of the token inside the phrase, 0 ≤ Offset < Length.
	Offset int
}
