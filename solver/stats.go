package solver

import "time"

// Stats counts the work one solve performed. Commands serialize it next
// to their results, so keep the field tags stable.
type Stats struct {
	// Propagations is the number of times the arc consistency worklist
	// ran, including reruns triggered by forward checking.
	Propagations int `json:"propagations" yaml:"propagations"`
	// Revisions counts individual arc revisions across all propagations.
	Revisions int `json:"revisions" yaml:"revisions"`
	// Removals counts words struck from domains by those revisions.
	Removals int `json:"removals" yaml:"removals"`
	// SearchNodes counts backtracking search nodes visited.
	SearchNodes int `json:"search_nodes" yaml:"search_nodes"`
	// Backtracks counts search nodes that exhausted every candidate.
	Backtracks int           `json:"backtracks" yaml:"backtracks"`
	Duration   time.Duration `json:"duration" yaml:"duration"`
}
