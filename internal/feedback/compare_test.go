package feedback_test

import (
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/robalobadob/wordle/apps/feedback/internal/feedback"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCompareScenarios(t *testing.T) {
	cases := []struct {
		name   string
		answer string
		guess  string
		want   string
	}{
		{"identical", "TWINS", "TWINS", "HHHHH"},
		{"nothing in common", "TWINS", "FRAUD", "MMMMM"},
		{"all three outcomes", "WEARY", "SWORE", "MPMHP"},
		{"guess repeats, first copy hits", "WEARY", "WEEPY", "HHMMH"},
		{"guess repeats, second copy hits", "WEARY", "EERIE", "MHPMM"},
		{"three copies span every outcome", "TENET", "EERIE", "PHMMM"},
		{"hit on answer's second repeat", "ABBEY", "KEBAB", "MPHPP"},
		{"exact match not shadowed by earlier copy", "ABBEY", "CABAL", "MPHMM"},
		{"both repeat, second copies align", "EATEN", "LEVER", "MPMHM"},
		{"both repeat, no alignment", "ALARM", "PAPAL", "MPMPP"},
		{"answer repeats, first copy aligns", "WEEPY", "WEARY", "HHMMH"},
		{"answer repeats, second copy aligns", "EERIE", "WEARY", "MHMPM"},
	}

	c, err := feedback.New(feedback.DefaultWordLength)
	require.NoError(t, err)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fb, err := c.CompareStrings(tc.guess, tc.answer)
			require.NoError(t, err)
			assert.Equal(t, tc.want, fb.String())
		})
	}
}

func TestCompareNormalizesCase(t *testing.T) {
	c, err := feedback.New(5)
	require.NoError(t, err)

	fb, err := c.CompareStrings(" swore ", "Weary")
	require.NoError(t, err)
	assert.Equal(t, "MPMHP", fb.String())
}

func TestCompareIdentityIsSolved(t *testing.T) {
	for _, w := range []string{"A", "TWINS", "EERIE", "BOOKKEEPER"} {
		word := feedback.MustWord(w)
		fb, err := feedback.Compare(word, word)
		require.NoError(t, err)
		require.Len(t, fb, word.Len())
		assert.True(t, fb.Solved(), w)
	}
}

func TestCompareIsNotSymmetric(t *testing.T) {
	a, err := feedback.Compare(feedback.MustWord("SWORE"), feedback.MustWord("WEARY"))
	require.NoError(t, err)
	b, err := feedback.Compare(feedback.MustWord("WEARY"), feedback.MustWord("SWORE"))
	require.NoError(t, err)

	assert.Equal(t, "MPMHP", a.String())
	assert.Equal(t, "PPMHM", b.String())
}

func TestComparePreconditions(t *testing.T) {
	c, err := feedback.New(5)
	require.NoError(t, err)

	cases := []struct {
		name   string
		guess  string
		answer string
		field  string
		want   error
	}{
		{"short guess", "CAT", "TWINS", "guess", feedback.ErrLength},
		{"long answer", "TWINS", "TWINSET", "answer", feedback.ErrLength},
		{"empty guess", "", "TWINS", "guess", feedback.ErrLength},
		{"digit in guess", "TW1NS", "TWINS", "guess", feedback.ErrLetter},
		{"accented answer", "TWINS", "CAFÉS", "answer", feedback.ErrLetter},
		{"hyphen in answer", "TWINS", "CO-OP", "answer", feedback.ErrLetter},
		{"long s folds to ASCII", "ſtare", "STARE", "guess", feedback.ErrLetter},
		{"dotless i folds to ASCII", "TWINS", "ıtems", "answer", feedback.ErrLetter},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fb, err := c.CompareStrings(tc.guess, tc.answer)
			require.Error(t, err)
			assert.Nil(t, fb)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)

			var ie *feedback.InputError
			require.True(t, errors.As(err, &ie))
			assert.Equal(t, tc.field, ie.Field)
		})
	}
}

func TestCompareRejectsMismatchedWords(t *testing.T) {
	_, err := feedback.Compare(feedback.MustWord("TWINS"), feedback.MustWord("TWIN"))
	assert.ErrorIs(t, err, feedback.ErrLength)

	_, err = feedback.Compare(feedback.Word{}, feedback.Word{})
	assert.ErrorIs(t, err, feedback.ErrLength)

	c, err := feedback.New(4)
	require.NoError(t, err)
	_, err = c.Compare(feedback.MustWord("TWINS"), feedback.MustWord("FRAUD"))
	assert.ErrorIs(t, err, feedback.ErrLength)
}

func TestNewRejectsNonPositiveLength(t *testing.T) {
	for _, n := range []int{0, -3} {
		c, err := feedback.New(n)
		assert.Nil(t, c)
		assert.ErrorIs(t, err, feedback.ErrWordLength)
	}
	_, err := feedback.NewWord("TWINS", 0)
	assert.ErrorIs(t, err, feedback.ErrWordLength)
}

// tombstone scores by scanning answer letters left to right and blanking
// each one as it is matched. score must agree with it on every input.
func tombstone(guess, answer string) feedback.Feedback {
	ans := []byte(answer)
	out := make(feedback.Feedback, len(guess))
	done := make([]bool, len(guess))
	for i := range guess {
		if guess[i] == ans[i] {
			out[i] = feedback.Hit
			done[i] = true
			ans[i] = 0
		}
	}
	for i := range guess {
		if done[i] {
			continue
		}
		out[i] = feedback.Miss
		for j := range ans {
			if ans[j] == guess[i] {
				out[i] = feedback.Present
				ans[j] = 0
				break
			}
		}
	}
	return out
}

func randomWord(rng *rand.Rand, alphabet string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(b)
}

func TestCompareProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	// A small alphabet forces plenty of repeated letters.
	const alphabet = "ABET"

	for n := 1; n <= 7; n++ {
		c, err := feedback.New(n)
		require.NoError(t, err)

		for k := 0; k < 300; k++ {
			g := randomWord(rng, alphabet, n)
			a := randomWord(rng, alphabet, n)

			fb, err := c.CompareStrings(g, a)
			require.NoError(t, err)
			require.Len(t, fb, n)

			if diff := cmp.Diff(tombstone(g, a), fb); diff != "" {
				t.Fatalf("guess %s answer %s mismatch (-want +got):\n%s", g, a, diff)
			}

			credited := map[byte]int{}
			inAnswer := map[byte]int{}
			for i := 0; i < n; i++ {
				if fb[i] != feedback.Miss {
					credited[g[i]]++
				}
				inAnswer[a[i]]++
			}
			for letter, got := range credited {
				require.LessOrEqual(t, got, inAnswer[letter],
					"letter %c over-credited for guess %s answer %s", letter, g, a)
			}
		}
	}
}

func TestCompareConcurrentCallers(t *testing.T) {
	c, err := feedback.New(5)
	require.NoError(t, err)

	pairs := [][3]string{
		{"SWORE", "WEARY", "MPMHP"},
		{"KEBAB", "ABBEY", "MPHPP"},
		{"EERIE", "TENET", "PHMMM"},
		{"FRAUD", "TWINS", "MMMMM"},
	}

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for w := 0; w < 16; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for k := 0; k < 200; k++ {
				p := pairs[(w+k)%len(pairs)]
				fb, err := c.CompareStrings(p[0], p[1])
				if err != nil || fb.String() != p[2] {
					select {
					case errs <- p[0] + "/" + p[1]:
					default:
					}
					return
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Errorf("concurrent comparison diverged for %s", e)
	}
}

func TestParsePair(t *testing.T) {
	c, err := feedback.New(5)
	require.NoError(t, err)

	p, err := c.ParsePair("kebab", " ABBEY")
	require.NoError(t, err)
	assert.Equal(t, "KEBAB", p.Guess().String())
	assert.Equal(t, "ABBEY", p.Answer().String())
	assert.Equal(t, "MPHPP", p.Feedback().String())

	_, err = c.ParsePair("kebab", "abbeys")
	var ie *feedback.InputError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "answer", ie.Field)

	assert.Empty(t, feedback.Pair{}.Feedback())
}
