// internal/feedback/types.go
//
// Core type definitions for the feedback comparator.
// Defines:
//   - Word:     an immutable, case-normalized guess or answer.
//   - Symbol:   per-letter result of a comparison (hit/present/miss).
//   - Feedback: the ordered symbols for one guess.

package feedback

import (
	"strings"
)

// Symbol represents the evaluation result for a single letter in a guess.
// The numeric values double as wire marks (0=miss, 1=present, 2=hit).
type Symbol uint8

const (
	Miss    Symbol = iota // letter does not match any unconsumed answer letter
	Present               // letter is in the answer at another position
	Hit                   // letter is in the answer at this position
)

// String returns the lowercase symbol name.
func (s Symbol) String() string {
	switch s {
	case Hit:
		return "hit"
	case Present:
		return "present"
	case Miss:
		return "miss"
	}
	return "unknown"
}

// Code returns the single-letter code used in compact feedback strings.
func (s Symbol) Code() byte {
	switch s {
	case Hit:
		return 'H'
	case Present:
		return 'P'
	}
	return 'M'
}

// Feedback is the ordered result of comparing a guess to an answer.
// Index i describes letter i of the guess.
type Feedback []Symbol

// Solved reports whether every position is a Hit.
func (f Feedback) Solved() bool {
	if len(f) == 0 {
		return false
	}
	for _, s := range f {
		if s != Hit {
			return false
		}
	}
	return true
}

// String renders the feedback as H/P/M codes, e.g. "MPMHP".
func (f Feedback) String() string {
	var b strings.Builder
	b.Grow(len(f))
	for _, s := range f {
		b.WriteByte(s.Code())
	}
	return b.String()
}

// Word is an immutable sequence of uppercase A–Z letters.
// The zero value is an empty word.
type Word struct {
	letters string
}

// NewWord normalizes s to uppercase and checks that it holds exactly
// length letters in A–Z.
func NewWord(s string, length int) (Word, error) {
	if length < 1 {
		return Word{}, &InputError{Field: "length", Value: s, Err: ErrWordLength}
	}
	w, err := ParseWord(s)
	if err != nil {
		return Word{}, err
	}
	if w.Len() != length {
		return Word{}, &InputError{Field: "word", Value: s, Err: ErrLength}
	}
	return w, nil
}

// ParseWord checks that s is a non-empty run of ASCII letters and returns
// it uppercased, without constraining its length.
//
// Letters are checked byte by byte before case folding: strings.ToUpper
// would map runes such as 'ſ' or 'ı' onto ASCII letters.
func ParseWord(s string) (Word, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Word{}, &InputError{Field: "word", Value: s, Err: ErrLength}
	}
	b := make([]byte, len(t))
	for i := 0; i < len(t); i++ {
		c := t[i]
		switch {
		case c >= 'A' && c <= 'Z':
			b[i] = c
		case c >= 'a' && c <= 'z':
			b[i] = c - 'a' + 'A'
		default:
			return Word{}, &InputError{Field: "word", Value: s, Err: ErrLetter}
		}
	}
	return Word{letters: string(b)}, nil
}

// MustWord is like ParseWord but panics on malformed input.
// Intended for tests and fixed tables.
func MustWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

// Len returns the number of letters.
func (w Word) Len() int { return len(w.letters) }

// At returns the letter at index i.
func (w Word) At(i int) byte { return w.letters[i] }

// String returns the normalized letters.
func (w Word) String() string { return w.letters }
