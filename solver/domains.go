package solver

import (
	"sort"

	"github.com/AlexWSP/cs50-ai/crossword"
)

// Domains tracks the candidate words still available to each slot. Apart
// from an explicit snapshot restore it only ever shrinks.
type Domains map[crossword.Variable]map[string]bool

// NewDomains gives every slot the full word list as its starting domain.
func NewDomains(cw *crossword.Crossword, words []string) Domains {
	d := make(Domains, len(cw.Variables()))
	for _, v := range cw.Variables() {
		set := make(map[string]bool, len(words))
		for _, w := range words {
			set[w] = true
		}
		d[v] = set
	}
	return d
}

// Words returns v's remaining candidates in sorted order.
func (d Domains) Words(v crossword.Variable) []string {
	words := make([]string, 0, len(d[v]))
	for w := range d[v] {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

func (d Domains) Size(v crossword.Variable) int { return len(d[v]) }

func (d Domains) Has(v crossword.Variable, word string) bool { return d[v][word] }

func (d Domains) Remove(v crossword.Variable, word string) { delete(d[v], word) }

// Clone deep-copies every domain. Forward checking snapshots domains with
// it before narrowing them, so a failed branch cannot leak removals into
// its siblings.
func (d Domains) Clone() Domains {
	out := make(Domains, len(d))
	for v, set := range d {
		cp := make(map[string]bool, len(set))
		for w := range set {
			cp[w] = true
		}
		out[v] = cp
	}
	return out
}

// FirstEmpty returns a slot whose domain has been exhausted, if any. With
// several exhausted slots it picks the smallest by Compare so callers see
// a stable answer.
func (d Domains) FirstEmpty() (crossword.Variable, bool) {
	var found crossword.Variable
	ok := false
	for v, set := range d {
		if len(set) > 0 {
			continue
		}
		if !ok || v.Compare(found) < 0 {
			found = v
			ok = true
		}
	}
	return found, ok
}
