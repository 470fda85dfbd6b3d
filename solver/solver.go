// Package solver fills crossword grids by constraint satisfaction. A
// solve runs node consistency, then arc consistency over the crossing
// constraints, then a backtracking search ordered by the usual
// heuristics: minimum remaining values and degree to pick a slot, least
// constraining value to pick its word.
package solver

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/AlexWSP/cs50-ai/crossword"
)

// ErrNoSolution is returned when no assignment satisfies the puzzle. It
// is an expected outcome, not a failure of the solver.
var ErrNoSolution = errors.New("no assignment satisfies the puzzle")

// Options tune a solve. The zero value gives the reference behavior:
// propagate once up front, then search over fixed domains.
type Options struct {
	// ForwardCheck narrows the freshly bound slot's domain to its word
	// and re-propagates arc consistency at every search node, pruning
	// branches earlier at the cost of copying domains for the restore
	// on backtrack.
	ForwardCheck bool
}

// A Solver holds the state of one solve: the structure, the shrinking
// domains, and counters. It is single-use; make a new one per puzzle.
type Solver struct {
	cw      *crossword.Crossword
	domains Domains
	opts    Options
	stats   Stats
}

// New prepares a solve of cw over the given word list. A nil opts means
// defaults.
func New(cw *crossword.Crossword, words []string, opts *Options) *Solver {
	if opts == nil {
		opts = &Options{}
	}
	return &Solver{cw: cw, domains: NewDomains(cw, words), opts: *opts}
}

// Solve runs the full pipeline and returns the first satisfying
// assignment found, or ErrNoSolution. The context is checked at every
// search node, so a cancelled or expired ctx aborts the search with its
// error.
func (s *Solver) Solve(ctx context.Context) (Assignment, error) {
	start := time.Now()
	defer func() { s.stats.Duration = time.Since(start) }()

	s.EnforceNodeConsistency()
	if v, empty := s.domains.FirstEmpty(); empty {
		log.Debug().Stringer("variable", v).Msg("no words fit this slot's length")
		return nil, ErrNoSolution
	}
	if !s.Propagate(nil) {
		return nil, ErrNoSolution
	}
	log.Debug().
		Int("revisions", s.stats.Revisions).
		Int("removals", s.stats.Removals).
		Msg("initial propagation done")

	a, err := s.backtrack(ctx, Assignment{})
	if err != nil {
		return nil, err
	}
	if a == nil {
		log.Debug().Int("search-nodes", s.stats.SearchNodes).Msg("search space exhausted")
		return nil, ErrNoSolution
	}
	return a, nil
}

// Stats reports the counters accumulated so far.
func (s *Solver) Stats() Stats { return s.stats }

// Domain returns the words still available to v, sorted.
func (s *Solver) Domain(v crossword.Variable) []string { return s.domains.Words(v) }

// backtrack searches depth-first from the partial assignment a. It
// returns a nil assignment and nil error when this subtree has no
// solution; the only errors are the context's.
func (s *Solver) backtrack(ctx context.Context, a Assignment) (Assignment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.stats.SearchNodes++
	if s.Complete(a) {
		return a, nil
	}
	v := s.SelectUnassignedVariable(a)
	for _, word := range s.OrderDomainValues(v, a) {
		next := a.Clone()
		next[v] = word
		if !s.Consistent(next) {
			continue
		}
		var snapshot Domains
		if s.opts.ForwardCheck {
			snapshot = s.domains.Clone()
			s.bind(v, word)
			if !s.Propagate(s.arcsTo(v)) {
				s.domains = snapshot
				continue
			}
		}
		result, err := s.backtrack(ctx, next)
		if err != nil {
			if snapshot != nil {
				s.domains = snapshot
			}
			return nil, err
		}
		if result != nil {
			return result, nil
		}
		if snapshot != nil {
			s.domains = snapshot
		}
	}
	s.stats.Backtracks++
	return nil, nil
}

// bind narrows v's domain to exactly word.
func (s *Solver) bind(v crossword.Variable, word string) {
	dom := s.domains[v]
	for w := range dom {
		if w != word {
			delete(dom, w)
		}
	}
}
