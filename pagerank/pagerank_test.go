package pagerank

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func threePageCorpus() Corpus {
	return Corpus{
		"1.html": {"2.html": true, "3.html": true},
		"2.html": {"3.html": true},
		"3.html": {"2.html": true},
	}
}

func TestCrawl(t *testing.T) {
	is := is.New(t)
	corpus, err := Crawl("testdata/corpus0")
	is.NoErr(err)
	is.Equal(corpus.Pages(), []string{"1.html", "2.html", "3.html"})
	// External and self links are gone; everything else survives.
	is.Equal(corpus.Links("1.html"), []string{"2.html"})
	is.Equal(corpus.Links("2.html"), []string{"1.html", "3.html"})
	is.Equal(corpus.Links("3.html"), []string{"2.html"})
}

func TestCrawlMissingDir(t *testing.T) {
	is := is.New(t)
	_, err := Crawl("testdata/no-such-dir")
	is.True(err != nil)
}

func TestTransition(t *testing.T) {
	dist := Transition(threePageCorpus(), "1.html", 0.85)
	assert.InDelta(t, 0.05, dist["1.html"], 1e-9)
	assert.InDelta(t, 0.475, dist["2.html"], 1e-9)
	assert.InDelta(t, 0.475, dist["3.html"], 1e-9)
}

func TestTransitionDanglingIsUniform(t *testing.T) {
	corpus := Corpus{
		"a.html": {},
		"b.html": {"a.html": true},
		"c.html": {"a.html": true},
	}
	dist := Transition(corpus, "a.html", 0.85)
	for _, p := range corpus.Pages() {
		assert.InDelta(t, 1.0/3.0, dist[p], 1e-9)
	}
}

func TestIterateTwoPageClosedForm(t *testing.T) {
	// Two pages linking only to each other split the rank evenly.
	corpus := Corpus{
		"a.html": {"b.html": true},
		"b.html": {"a.html": true},
	}
	ranks := Iterate(corpus, 0.85)
	assert.InDelta(t, 0.5, ranks["a.html"], 1e-3)
	assert.InDelta(t, 0.5, ranks["b.html"], 1e-3)
}

func TestIterateSumsToOneWithDangling(t *testing.T) {
	corpus := Corpus{
		"1.html": {"2.html": true},
		"2.html": {"1.html": true, "3.html": true},
		"3.html": {},
		"4.html": {"2.html": true},
	}
	ranks := Iterate(corpus, 0.85)
	sum := 0.0
	for _, r := range ranks {
		sum += r
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
	// Everything links toward 2, so it must rank highest.
	for _, p := range []string{"1.html", "3.html", "4.html"} {
		assert.Greater(t, ranks["2.html"], ranks[p])
	}
}

func TestSamplerRanksSumToOne(t *testing.T) {
	s := NewSampler().Seed(42)
	ranks := s.Estimate(threePageCorpus())
	sum := 0.0
	for _, r := range ranks {
		sum += r
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestSamplerSeededIsDeterministic(t *testing.T) {
	is := is.New(t)
	corpus := threePageCorpus()
	first := NewSampler().Seed(7).Estimate(corpus)
	second := NewSampler().Seed(7).Estimate(corpus)
	is.Equal(first, second)
}

func TestSamplerAgreesWithIteration(t *testing.T) {
	corpus := threePageCorpus()
	sampled := NewSampler().Seed(1).Estimate(corpus)
	iterated := Iterate(corpus, DefaultDamping)
	for _, p := range corpus.Pages() {
		assert.InDelta(t, iterated[p], sampled[p], 0.05, "page %s", p)
	}
}

func TestSamplerParallelChainsStillSumToOne(t *testing.T) {
	s := NewSampler().Seed(9)
	s.Chains = 4
	ranks := s.Estimate(threePageCorpus())
	sum := 0.0
	for _, r := range ranks {
		sum += r
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}
