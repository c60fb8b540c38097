// internal/feedback/compare.go
//
// Guess/answer comparison for a Wordle-style game.
// Responsibilities:
//   - Validate that guess and answer share the configured word length.
//   - Score a guess with the two-pass algorithm (hits first, then presents).
//   - Guarantee each answer letter is consumed by at most one guess letter.
//
// Notes:
//   - Comparisons are pure; every call works on its own letter counts, so a
//     Comparator can be shared across goroutines without locking.
//   - Display glyphs are not chosen here; see the render package.

package feedback

// DefaultWordLength is the classic Wordle word length.
const DefaultWordLength = 5

// Comparator scores guesses against answers of a fixed word length.
type Comparator struct {
	length int
}

// New returns a Comparator for words of the given length.
func New(length int) (*Comparator, error) {
	if length < 1 {
		return nil, &InputError{Field: "length", Err: ErrWordLength}
	}
	return &Comparator{length: length}, nil
}

// WordLength returns the configured number of letters per word.
func (c *Comparator) WordLength() int { return c.length }

// Word parses s as a word of the comparator's length.
func (c *Comparator) Word(s string) (Word, error) {
	return NewWord(s, c.length)
}

// Compare scores guess against answer. Both must have the comparator's
// word length.
func (c *Comparator) Compare(guess, answer Word) (Feedback, error) {
	if guess.Len() != c.length {
		return nil, &InputError{Field: "guess", Value: guess.String(), Err: ErrLength}
	}
	if answer.Len() != c.length {
		return nil, &InputError{Field: "answer", Value: answer.String(), Err: ErrLength}
	}
	return score(guess, answer), nil
}

// Pair is a guess and answer already checked to share one length.
// Only ParsePair builds non-empty pairs, so scoring a Pair cannot fail.
type Pair struct {
	guess, answer Word
}

// Guess returns the normalized guess.
func (p Pair) Guess() Word { return p.guess }

// Answer returns the normalized answer.
func (p Pair) Answer() Word { return p.answer }

// Feedback scores the pair.
func (p Pair) Feedback() Feedback { return score(p.guess, p.answer) }

// ParsePair parses a raw guess and answer. Errors name the offending side.
func (c *Comparator) ParsePair(guess, answer string) (Pair, error) {
	g, err := c.Word(guess)
	if err != nil {
		return Pair{}, relabel(err, "guess")
	}
	a, err := c.Word(answer)
	if err != nil {
		return Pair{}, relabel(err, "answer")
	}
	return Pair{guess: g, answer: a}, nil
}

// CompareStrings normalizes and validates both inputs, then scores them.
func (c *Comparator) CompareStrings(guess, answer string) (Feedback, error) {
	p, err := c.ParsePair(guess, answer)
	if err != nil {
		return nil, err
	}
	return p.Feedback(), nil
}

// Compare scores guess against answer for words of any common length.
func Compare(guess, answer Word) (Feedback, error) {
	if guess.Len() == 0 {
		return nil, &InputError{Field: "guess", Err: ErrLength}
	}
	if guess.Len() != answer.Len() {
		return nil, &InputError{Field: "answer", Value: answer.String(), Err: ErrLength}
	}
	return score(guess, answer), nil
}

// score implements the two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Hit.
//   - Count the answer letters that were not hit; these are still available.
//
// Pass 2:
//   - Left to right, each non-hit guess letter takes one available answer
//     letter and becomes Present, or becomes Miss when none is left.
//
// Running pass 1 to completion first keeps an exact match from being
// shadowed by an earlier wrong-position match of the same letter.
func score(guess, answer Word) Feedback {
	n := guess.Len()
	res := make(Feedback, n)

	if guess.letters == answer.letters {
		for i := range res {
			res[i] = Hit
		}
		return res
	}

	var avail [26]int
	hit := make([]bool, n)

	for i := 0; i < n; i++ {
		if guess.At(i) == answer.At(i) {
			res[i] = Hit
			hit[i] = true
		} else {
			avail[answer.At(i)-'A']++
		}
	}

	for i := 0; i < n; i++ {
		if hit[i] {
			continue
		}
		j := guess.At(i) - 'A'
		if avail[j] > 0 {
			res[i] = Present
			avail[j]--
		} else {
			res[i] = Miss
		}
	}
	return res
}
