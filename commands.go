package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/feedback/internal/config"
	"github.com/robalobadob/wordle/apps/feedback/internal/feedback"
	"github.com/robalobadob/wordle/apps/feedback/internal/httpserver"
	"github.com/robalobadob/wordle/apps/feedback/internal/render"
)

var rootCmd = &cobra.Command{
	Use:          "wordle-feedback",
	Short:        "Score Wordle guesses against an answer",
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP comparison API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var compareCmd = &cobra.Command{
	Use:   "compare GUESS ANSWER",
	Short: "Print feedback for one guess",
	Long: `Print per-letter feedback for GUESS against ANSWER.

Formats:
  glyphs   coloured boxes (default)
  letters  H = right spot, P = wrong spot, M = not in answer
  marks    2 = right spot, 1 = wrong spot, 0 = not in answer`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return runCompare(cmd.OutOrStdout(), cfg, compareFormat, args[0], args[1])
	},
}

var (
	servePort     string
	compareFormat string
)

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (overrides PORT)")
	compareCmd.Flags().StringVar(&compareFormat, "format", "glyphs", "output format: glyphs, letters or marks")
	rootCmd.AddCommand(serveCmd, compareCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != "" {
		cfg.Port = servePort
	}
	zerolog.SetGlobalLevel(cfg.Level())

	srv, err := httpserver.New(cfg)
	if err != nil {
		return err
	}
	log.Info().Str("port", cfg.Port).Int("wordLength", cfg.WordLength).Msg("starting feedback server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("server exited")
		return err
	}
	return nil
}

// runCompare scores one pair and writes it in the requested format.
func runCompare(out io.Writer, cfg config.Config, format, guess, answer string) error {
	cmp, err := feedback.New(cfg.WordLength)
	if err != nil {
		return err
	}
	fb, err := cmp.CompareStrings(guess, answer)
	if err != nil {
		return err
	}

	var line string
	switch strings.ToLower(format) {
	case "", "glyphs":
		line = cfg.Glyphs.WithDefaults().Render(fb)
	case "letters":
		line = render.Letters(fb)
	case "marks":
		marks := render.Marks(fb)
		parts := make([]string, len(marks))
		for i, m := range marks {
			parts[i] = fmt.Sprint(m)
		}
		line = strings.Join(parts, " ")
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	_, err = fmt.Fprintln(out, line)
	return err
}
