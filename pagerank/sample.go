package pagerank

import (
	"encoding/binary"
	"sync"

	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"
)

// A Sampler estimates ranks with random-surfer walks. The zero value is
// not usable; call NewSampler.
type Sampler struct {
	Damping float64
	Samples int
	// Chains is how many independent walks to run in parallel; their
	// visit counts merge into one estimate. 1 reproduces a single walk.
	Chains int
	seed   uint64
}

// NewSampler returns a Sampler with the default damping and sample
// count, a single chain, and an unseeded RNG.
func NewSampler() *Sampler {
	return &Sampler{Damping: DefaultDamping, Samples: DefaultSamples, Chains: 1}
}

// Seed pins the RNG so repeated runs visit the same pages. Zero means
// unseeded.
func (s *Sampler) Seed(seed uint64) *Sampler {
	s.seed = seed
	return s
}

func (s *Sampler) rng(chain int) *frand.RNG {
	if s.seed == 0 {
		return frand.New()
	}
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], s.seed)
	binary.LittleEndian.PutUint64(key[8:16], uint64(chain)+1)
	return frand.NewCustom(key[:], 1024, 12)
}

// Estimate walks the corpus and returns each page's visit share. The
// shares sum to 1.
func (s *Sampler) Estimate(corpus Corpus) map[string]float64 {
	pages := corpus.Pages()
	counts := make(map[string]int, len(pages))
	var mu sync.Mutex

	chains := s.Chains
	if chains < 1 {
		chains = 1
	}
	per := s.Samples / chains
	g := errgroup.Group{}
	for chain := 0; chain < chains; chain++ {
		rng := s.rng(chain)
		g.Go(func() error {
			local := s.walk(corpus, pages, rng, per)
			mu.Lock()
			for p, n := range local {
				counts[p] += n
			}
			mu.Unlock()
			return nil
		})
	}
	// The walkers cannot fail; errgroup only coordinates them.
	_ = g.Wait()

	total := 0
	for _, n := range counts {
		total += n
	}
	ranks := make(map[string]float64, len(pages))
	for _, p := range pages {
		ranks[p] = float64(counts[p]) / float64(total)
	}
	return ranks
}

// walk records n visits of one random surfer.
func (s *Sampler) walk(corpus Corpus, pages []string, rng *frand.RNG, n int) map[string]int {
	counts := make(map[string]int, len(pages))
	page := pages[rng.Intn(len(pages))]
	for i := 0; i < n; i++ {
		counts[page]++
		page = pick(pages, Transition(corpus, page, s.Damping), rng)
	}
	return counts
}

// pick draws one page from the distribution. Iterating pages in sorted
// order keeps seeded runs reproducible.
func pick(pages []string, dist map[string]float64, rng *frand.RNG) string {
	r := rng.Float64()
	for _, p := range pages {
		r -= dist[p]
		if r < 0 {
			return p
		}
	}
	return pages[len(pages)-1]
}
