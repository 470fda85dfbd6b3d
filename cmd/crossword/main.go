// Command crossword fills a puzzle grid from a word list.
//
// Usage: crossword [flags] <structure-file> <words-file> [output-file]
//
// The solved grid prints to stdout; with an output path it is also
// saved as a PNG. "No solution." is a normal outcome, not an error.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/AlexWSP/cs50-ai/config"
	"github.com/AlexWSP/cs50-ai/crossword"
	"github.com/AlexWSP/cs50-ai/render"
	"github.com/AlexWSP/cs50-ai/solver"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(cfg.GetBool("debug"))

	args := cfg.Args()
	if len(args) != 2 && len(args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: crossword [flags] <structure-file> <words-file> [output-file]")
		os.Exit(2)
	}
	structurePath, wordsPath := args[0], args[1]
	fingerprint(structurePath)
	fingerprint(wordsPath)

	cw, err := crossword.LoadCrossword(structurePath)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load structure")
	}
	words, err := crossword.LoadWords(wordsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load words")
	}
	log.Debug().
		Int("variables", len(cw.Variables())).
		Int("words", len(words)).
		Msg("puzzle loaded")

	ctx := context.Background()
	if timeout := cfg.GetDuration("timeout"); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	s := solver.New(cw, words, &solver.Options{ForwardCheck: cfg.GetBool("forward-check")})
	assignment, err := s.Solve(ctx)
	writeSolveLog(cfg.GetString("solve-log"), s.Stats())
	switch {
	case err == solver.ErrNoSolution:
		fmt.Println("No solution.")
		return
	case err != nil:
		log.Fatal().Err(err).Msg("solve aborted")
	}

	fmt.Print(render.Text(cw, assignment))
	if len(args) == 3 {
		if err := render.SaveImage(cw, assignment, args[2]); err != nil {
			log.Fatal().Err(err).Msg("could not save image")
		}
	}
}

func setupLogging(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// fingerprint logs a stable hash of an input file so a run can be tied
// back to the exact inputs it saw.
func fingerprint(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		// The loader reports the real error shortly.
		return
	}
	log.Debug().Str("file", path).Uint64("xxhash", xxhash.Sum64(data)).Msg("input fingerprint")
}

func writeSolveLog(path string, stats solver.Stats) {
	if path == "" {
		return
	}
	out, err := yaml.Marshal(stats)
	if err != nil {
		log.Err(err).Msg("could not marshal solve stats")
		return
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		log.Err(err).Msg("could not write solve log")
	}
}
