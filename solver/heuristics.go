package solver

import (
	"sort"

	"github.com/samber/lo"

	"github.com/AlexWSP/cs50-ai/crossword"
)

// SelectUnassignedVariable picks the slot to branch on next: fewest
// remaining candidates first, ties broken by most neighbors, then by grid
// order. The caller guarantees at least one slot is unassigned.
func (s *Solver) SelectUnassignedVariable(a Assignment) crossword.Variable {
	unassigned := lo.Filter(s.cw.Variables(), func(v crossword.Variable, _ int) bool {
		_, bound := a[v]
		return !bound
	})
	sort.Slice(unassigned, func(i, j int) bool {
		x, y := unassigned[i], unassigned[j]
		if dx, dy := s.domains.Size(x), s.domains.Size(y); dx != dy {
			return dx < dy
		}
		if nx, ny := len(s.cw.Neighbors(x)), len(s.cw.Neighbors(y)); nx != ny {
			return nx > ny
		}
		return x.Compare(y) < 0
	})
	return unassigned[0]
}

// OrderDomainValues returns v's candidates least constraining first:
// ranked by how many words each would strike from the domains of v's
// unassigned neighbors, ties broken alphabetically. Domains are only
// read, never narrowed.
func (s *Solver) OrderDomainValues(v crossword.Variable, a Assignment) []string {
	words := s.domains.Words(v)
	if len(words) < 2 {
		return words
	}
	eliminated := make(map[string]int, len(words))
	for _, n := range s.cw.Neighbors(v) {
		if _, bound := a[n]; bound {
			continue
		}
		ov, ok := s.cw.Overlap(v, n)
		if !ok {
			continue
		}
		for _, w := range words {
			for nw := range s.domains[n] {
				if w[ov.I] != nw[ov.J] {
					eliminated[w]++
				}
			}
		}
	}
	sort.SliceStable(words, func(i, j int) bool {
		return eliminated[words[i]] < eliminated[words[j]]
	})
	return words
}
