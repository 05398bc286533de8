package token

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyWitnessID indicates a witness was created without an identifier.
	ErrEmptyWitnessID = errors.New("token: witness ID is empty")
)

// Token is the smallest comparable unit of a witness.
type Token struct {
	// Witness is the owner of this token.
	Witness *Witness

	// Index is the 0-based position of the token within Witness.Tokens.
	Index int

	// Content is the raw text of the token, as it appeared in the witness.
	Content string

	// Normalized is the comparator-visible form.
	Normalized string
}

// String renders the token as witness:index:content for diagnostics.
func (t *Token) String() string {
	if t == nil {
		return "<nil>"
	}
	id := ""
	if t.Witness != nil {
		id = t.Witness.ID
	}

	return fmt.Sprintf("%s:%d:%s", id, t.Index, t.Content)
}

// Witness is an ordered, immutable sequence of tokens with a stable ID.
type Witness struct {
	ID     string
	Tokens []*Token
}

// Len returns the number of tokens in w.
func (w *Witness) Len() int { return len(w.Tokens) }

// String returns the witness ID.
func (w *Witness) String() string { return w.ID }

// Option configures witness construction.
type Option func(*options)

type options struct {
	lowercase bool
}

// WithLowercase normalizes tokens to lower case.
func WithLowercase() Option {
	return func(o *options) { o.lowercase = true }
}

// NewWitness splits text on whitespace and wraps the words as tokens of a new
// witness with the given id.
//
// An empty text yields a witness with zero tokens; rejecting such witnesses is
// the job of the consumer (tokenindex.Build reports ErrEmptyWitness).
func NewWitness(id, text string, opts ...Option) (*Witness, error) {
	return FromWords(id, strings.Fields(text), opts...)
}

// FromWords builds a witness from pre-split words.
func FromWords(id string, words []string, opts ...Option) (*Witness, error) {
	if id == "" {
		return nil, ErrEmptyWitnessID
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	w := &Witness{ID: id, Tokens: make([]*Token, 0, len(words))}
	for i, word := range words {
		w.Tokens = append(w.Tokens, &Token{
			Witness:    w,
			Index:      i,
			Content:    word,
			Normalized: Normalize(word, o.lowercase),
		})
	}

	return w, nil
}

// Normalize trims surrounding whitespace and optionally folds case.
func Normalize(s string, lowercase bool) string {
	s = strings.TrimSpace(s)
	if lowercase {
		s = strings.ToLower(s)
	}

	return s
}

// MustWitnesses builds one witness per text with IDs "w1", "w2", ...
// It panics on error and is meant for tests and examples.
func MustWitnesses(texts ...string) []*Witness {
	out := make([]*Witness, 0, len(texts))
	for i, text := range texts {
		w, err := NewWitness(fmt.Sprintf("w%d", i+1), text)
		if err != nil {
			panic(err)
		}
		out = append(out, w)
	}

	return out
}
