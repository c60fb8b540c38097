// internal/render/render.go
//
// Display tokens for comparator feedback.
// The feedback package only knows Hit/Present/Miss; this package maps those
// symbols to whatever the caller shows: coloured boxes, H/P/M codes, or the
// numeric marks used on the wire.

package render

import (
	"strings"

	"github.com/robalobadob/wordle/apps/feedback/internal/feedback"
)

// Glyphs is the set of tokens printed for each symbol.
type Glyphs struct {
	Hit     string `yaml:"hit"`
	Present string `yaml:"present"`
	Miss    string `yaml:"miss"`
}

// DefaultGlyphs uses coloured boxes.
var DefaultGlyphs = Glyphs{
	Hit:     "🟩",
	Present: "🟨",
	Miss:    "🟥",
}

// For returns the glyph for one symbol.
func (g Glyphs) For(s feedback.Symbol) string {
	switch s {
	case feedback.Hit:
		return g.Hit
	case feedback.Present:
		return g.Present
	}
	return g.Miss
}

// Render joins the glyph for every symbol in fb.
func (g Glyphs) Render(fb feedback.Feedback) string {
	var b strings.Builder
	for _, s := range fb {
		b.WriteString(g.For(s))
	}
	return b.String()
}

// WithDefaults fills any empty glyph from DefaultGlyphs.
func (g Glyphs) WithDefaults() Glyphs {
	if g.Hit == "" {
		g.Hit = DefaultGlyphs.Hit
	}
	if g.Present == "" {
		g.Present = DefaultGlyphs.Present
	}
	if g.Miss == "" {
		g.Miss = DefaultGlyphs.Miss
	}
	return g
}

// Letters renders fb as H/P/M codes.
func Letters(fb feedback.Feedback) string { return fb.String() }

// Marks renders fb as ints: 0 = miss, 1 = present, 2 = hit.
func Marks(fb feedback.Feedback) []int {
	out := make([]int, len(fb))
	for i, s := range fb {
		out[i] = int(s)
	}
	return out
}
