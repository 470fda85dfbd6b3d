package solver

import (
	"github.com/rs/zerolog/log"

	"github.com/AlexWSP/cs50-ai/crossword"
)

// An Arc is an ordered pair of crossing slots. Propagation revises the
// head X against the tail Y.
type Arc struct {
	X crossword.Variable
	Y crossword.Variable
}

// EnforceNodeConsistency drops every word that cannot fit its slot's
// length. Running it a second time changes nothing.
func (s *Solver) EnforceNodeConsistency() {
	for v, dom := range s.domains {
		for w := range dom {
			if len(w) != v.Length {
				delete(dom, w)
			}
		}
	}
}

// Revise removes from x's domain every word with no possible partner left
// in y's domain at the crossing cell, and reports whether it removed
// anything. Slots that do not cross leave x untouched.
func (s *Solver) Revise(x, y crossword.Variable) bool {
	s.stats.Revisions++
	ov, ok := s.cw.Overlap(x, y)
	if !ok {
		return false
	}
	var drop []string
	for wx := range s.domains[x] {
		if !s.supported(wx, ov, y) {
			drop = append(drop, wx)
		}
	}
	for _, w := range drop {
		s.domains.Remove(x, w)
	}
	s.stats.Removals += len(drop)
	return len(drop) > 0
}

// supported reports whether some word remaining for y agrees with wx at
// the crossing cell.
func (s *Solver) supported(wx string, ov crossword.Overlap, y crossword.Variable) bool {
	for wy := range s.domains[y] {
		if wx[ov.I] == wy[ov.J] {
			return true
		}
	}
	return false
}

// Propagate enforces arc consistency over a FIFO worklist. A nil arcs
// argument seeds the worklist with every ordered pair of crossing slots;
// forward checking passes just the arcs pointing at a freshly bound slot.
// It returns false as soon as some domain is revised down to nothing.
func (s *Solver) Propagate(arcs []Arc) bool {
	s.stats.Propagations++
	if arcs == nil {
		arcs = s.allArcs()
	}
	queue := append([]Arc(nil), arcs...)
	for len(queue) > 0 {
		arc := queue[0]
		queue = queue[1:]
		if !s.Revise(arc.X, arc.Y) {
			continue
		}
		if s.domains.Size(arc.X) == 0 {
			log.Debug().Stringer("variable", arc.X).Msg("domain wiped out during propagation")
			return false
		}
		for _, z := range s.cw.Neighbors(arc.X) {
			if z != arc.Y {
				queue = append(queue, Arc{X: z, Y: arc.X})
			}
		}
	}
	return true
}

func (s *Solver) allArcs() []Arc {
	var arcs []Arc
	for _, x := range s.cw.Variables() {
		for _, y := range s.cw.Neighbors(x) {
			arcs = append(arcs, Arc{X: x, Y: y})
		}
	}
	return arcs
}

func (s *Solver) arcsTo(v crossword.Variable) []Arc {
	neighbors := s.cw.Neighbors(v)
	arcs := make([]Arc, 0, len(neighbors))
	for _, n := range neighbors {
		arcs = append(arcs, Arc{X: n, Y: v})
	}
	return arcs
}

// Consistent reports whether a partial assignment violates any constraint
// among the slots bound so far: a word of the wrong length, the same word
// in two slots, or crossing slots that disagree on their shared cell.
// Unbound slots are ignored.
func (s *Solver) Consistent(a Assignment) bool {
	seen := make(map[string]bool, len(a))
	for v, w := range a {
		if len(w) != v.Length {
			return false
		}
		if seen[w] {
			return false
		}
		seen[w] = true
		for _, n := range s.cw.Neighbors(v) {
			nw, bound := a[n]
			if !bound || len(nw) != n.Length {
				continue
			}
			ov, ok := s.cw.Overlap(v, n)
			if !ok {
				continue
			}
			if w[ov.I] != nw[ov.J] {
				return false
			}
		}
	}
	return true
}

// Complete reports whether every slot in the puzzle has been assigned a
// word. It says nothing about consistency.
func (s *Solver) Complete(a Assignment) bool {
	return len(a) == len(s.cw.Variables())
}
