package feedback

import (
	"errors"
	"fmt"
)

var (
	// ErrLength is returned when a word has the wrong number of letters,
	// or when a guess and answer differ in length.
	ErrLength = errors.New("feedback: word length mismatch")

	// ErrLetter is returned when a word contains a character outside A–Z.
	ErrLetter = errors.New("feedback: word contains a non-letter")

	// ErrWordLength is returned for a configured word length below 1.
	ErrWordLength = errors.New("feedback: word length must be positive")
)

// InputError describes a malformed comparator input.
type InputError struct {
	Field string // "guess", "answer", "word" or "length"
	Value string // raw input as received
	Err   error  // one of the sentinel errors above
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// relabel returns err with its Field set to field when it is an *InputError.
func relabel(err error, field string) error {
	var ie *InputError
	if errors.As(err, &ie) {
		return &InputError{Field: field, Value: ie.Value, Err: ie.Err}
	}
	return err
}
