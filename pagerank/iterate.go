package pagerank

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ConvergenceThreshold stops the iteration once no rank moved by more
// than this between rounds.
const ConvergenceThreshold = 0.001

// Iterate computes ranks by fixed-point iteration of the rank
// equations. A dangling page is treated as linking to every page, which
// keeps the total rank at 1 and matches what the sampler's uniform
// fallback converges to.
func Iterate(corpus Corpus, damping float64) map[string]float64 {
	pages := corpus.Pages()
	n := len(pages)
	if n == 0 {
		return map[string]float64{}
	}
	index := make(map[string]int, n)
	for i, p := range pages {
		index[p] = i
	}

	rank := make([]float64, n)
	for i := range rank {
		rank[i] = 1.0 / float64(n)
	}
	next := make([]float64, n)

	for {
		base := (1 - damping) / float64(n)
		for i := range next {
			next[i] = base
		}
		for _, p := range pages {
			share := rank[index[p]]
			links := corpus[p]
			if len(links) == 0 {
				// Dangling: spread the whole share uniformly.
				floats.AddConst(damping*share/float64(n), next)
				continue
			}
			for link := range links {
				next[index[link]] += damping * share / float64(len(links))
			}
		}
		delta := floats.Distance(rank, next, math.Inf(1))
		copy(rank, next)
		if delta <= ConvergenceThreshold {
			break
		}
	}

	ranks := make(map[string]float64, n)
	for i, p := range pages {
		ranks[p] = rank[i]
	}
	return ranks
}
