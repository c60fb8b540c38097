package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/feedback/internal/config"
	"github.com/robalobadob/wordle/apps/feedback/internal/feedback"
)

func TestRunCompareFormats(t *testing.T) {
	cfg := config.Default()
	cases := map[string]string{
		"glyphs":  "🟥🟨🟥🟩🟨\n",
		"":        "🟥🟨🟥🟩🟨\n",
		"letters": "MPMHP\n",
		"LETTERS": "MPMHP\n",
		"marks":   "0 1 0 2 1\n",
	}
	for format, want := range cases {
		var out bytes.Buffer
		require.NoError(t, runCompare(&out, cfg, format, "swore", "weary"), format)
		assert.Equal(t, want, out.String(), format)
	}
}

func TestRunCompareErrors(t *testing.T) {
	cfg := config.Default()
	var out bytes.Buffer

	err := runCompare(&out, cfg, "letters", "swore", "wary")
	assert.ErrorIs(t, err, feedback.ErrLength)

	err = runCompare(&out, cfg, "letters", "sw0re", "weary")
	assert.ErrorIs(t, err, feedback.ErrLetter)

	err = runCompare(&out, cfg, "sparkles", "swore", "weary")
	assert.Error(t, err)

	assert.Empty(t, out.String())
}

func TestCompareCommand(t *testing.T) {
	for _, k := range []string{"FEEDBACK_CONFIG", "PORT", "LOG_LEVEL", "CLIENT_ORIGIN", "WORD_LENGTH", "BATCH_MAX", "BATCH_WORKERS", "HANDLER_TIMEOUT"} {
		t.Setenv(k, "")
	}
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"compare", "--format", "letters", "kebab", "abbey"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		compareFormat = "glyphs"
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "MPHPP\n", out.String())
}

func TestGetEnv(t *testing.T) {
	t.Setenv("FEEDBACK_TEST_KEY", "")
	assert.Equal(t, "fallback", getEnv("FEEDBACK_TEST_KEY", "fallback"))
	t.Setenv("FEEDBACK_TEST_KEY", "set")
	assert.Equal(t, "set", getEnv("FEEDBACK_TEST_KEY", "fallback"))
}
