// Package token defines the atomic units that collation works on: Tokens,
// the Witnesses that own them, and the Comparators that decide whether two
// tokens are equivalent.
//
// A Witness is one copy of a text. It is an immutable, ordered sequence of
// Tokens; every Token keeps a back-reference to its Witness and its 0-based
// position inside it. Tokens are compared through their Normalized form only.
//
// Comparators:
//
//   - EqualityComparator:        exact comparison of normalized forms.
//   - EditDistanceComparator(k): forms within Levenshtein distance k are equivalent,
//     all others fall back to lexicographic order.
//
// Both return a total order usable for suffix sorting (negative, zero, positive).
//
// Tokenization beyond whitespace splitting is out of scope; NewWitness is a
// convenience for tests and for the command line tool.
package token
