// Package tokenindex finds every token sequence that repeats across the
// witnesses of a collation run.
//
// Build concatenates all witnesses into one token array and derives:
//
//   - the suffix array, the suffixes of the token array sorted under the
//     run's token comparator (a suffix stops at the end of its witness);
//   - the LCP array, the common-prefix length of adjacent suffixes, with the
//     sentinel -1 at index 0;
//   - the LCP intervals, suffix-array ranges sharing a phrase, with a depth
//     equal to the number of occurrences of that phrase.
//
// For the witnesses "a b c d e", "a e c d" and "a d b" the LCP array is
// [-1 1 1 0 1 0 2 0 1 1 0 1] and the intervals (start, length, depth) are
// (0,1,3) "a", (3,1,2) "b", (5,2,2) "c d", (7,1,3) "d" and (10,1,2) "e".
//
// Interval order (ascending start, then length) is stable across runs; the
// match cube relies on it for reproducible tie-breaking.
package tokenindex
