// Command pagerank ranks the pages of an HTML corpus directory, first
// by random-walk sampling and then by fixed-point iteration.
//
// Usage: pagerank [flags] <corpus-dir>
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/AlexWSP/cs50-ai/config"
	"github.com/AlexWSP/cs50-ai/pagerank"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(cfg.GetBool("debug"))

	args := cfg.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: pagerank [flags] <corpus-dir>")
		os.Exit(2)
	}

	corpus, err := pagerank.Crawl(args[0])
	if err != nil {
		log.Fatal().Err(err).Msg("could not crawl corpus")
	}
	if len(corpus) == 0 {
		log.Fatal().Str("dir", args[0]).Msg("corpus has no pages")
	}
	log.Debug().Int("pages", len(corpus)).Msg("corpus crawled")

	sampler := pagerank.NewSampler().Seed(cfg.GetUint64("seed"))
	sampler.Damping = cfg.GetFloat64("damping")
	sampler.Samples = cfg.GetInt("samples")
	sampler.Chains = cfg.GetInt("chains")

	sampled := sampler.Estimate(corpus)
	fmt.Printf("PageRank Results from Sampling (n = %d)\n", sampler.Samples)
	printRanks(corpus, sampled)

	iterated := pagerank.Iterate(corpus, cfg.GetFloat64("damping"))
	fmt.Println("PageRank Results from Iteration")
	printRanks(corpus, iterated)

	if cfg.GetBool("hist") {
		printHistogram(corpus, iterated)
	}
}

func printRanks(corpus pagerank.Corpus, ranks map[string]float64) {
	for _, page := range corpus.Pages() {
		fmt.Printf("  %s: %.4f\n", page, ranks[page])
	}
}

func printHistogram(corpus pagerank.Corpus, ranks map[string]float64) {
	values := make([]float64, 0, len(ranks))
	for _, page := range corpus.Pages() {
		values = append(values, ranks[page])
	}
	hist := histogram.Hist(10, values)
	if err := histogram.Fprint(os.Stdout, hist, histogram.Linear(40)); err != nil {
		log.Err(err).Msg("could not print histogram")
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
