// Package pagerank estimates the importance of pages in a small link
// graph, two ways: by sampling a random surfer and by iterating the
// rank equations to a fixed point. The two estimators share only the
// corpus and the damping factor.
package pagerank

import (
	"sort"

	"github.com/samber/lo"
)

// Default parameters for both estimators.
const (
	DefaultDamping = 0.85
	DefaultSamples = 10000
)

// A Corpus maps each page to the set of in-corpus pages it links to.
// A page with an empty set is dangling: it links nowhere.
type Corpus map[string]map[string]bool

// Pages returns every page name, sorted.
func (c Corpus) Pages() []string {
	pages := lo.Keys(c)
	sort.Strings(pages)
	return pages
}

// Links returns the pages that page links to, sorted.
func (c Corpus) Links(page string) []string {
	links := lo.Keys(c[page])
	sort.Strings(links)
	return links
}

// Transition returns the probability distribution over the page a
// random surfer on page visits next: with probability damping a uniform
// choice among page's links, otherwise a uniform choice among all
// pages. A dangling page yields the uniform distribution outright.
func Transition(corpus Corpus, page string, damping float64) map[string]float64 {
	dist := make(map[string]float64, len(corpus))
	links := corpus[page]
	if len(links) == 0 {
		for p := range corpus {
			dist[p] = 1.0 / float64(len(corpus))
		}
		return dist
	}
	for p := range corpus {
		dist[p] = (1 - damping) / float64(len(corpus))
	}
	for p := range links {
		dist[p] += damping / float64(len(links))
	}
	return dist
}
