package solver

import "github.com/AlexWSP/cs50-ai/crossword"

// An Assignment maps slots to the words chosen for them. It may be
// partial; search extends copies rather than mutating a shared instance,
// so sibling branches never observe each other's bindings.
type Assignment map[crossword.Variable]string

// Clone returns an independent copy.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a)+1)
	for v, w := range a {
		out[v] = w
	}
	return out
}
