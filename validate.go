package gantt

import "fmt"

// Validate checks a chart's links against its tasks: every link must
// reference known task IDs, and the elastic links must not form a directed
// cycle. A cyclic elastic chain would let a drag push positions around the
// loop indefinitely, so it is rejected up front rather than left to the
// resolver's depth ceiling. Non-elastic links are exempt — rigid groups may
// legally contain diamonds and cycles.
func Validate(tasks []Task, links []Link) error {
	known := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		known[t.ID] = true
	}

	adj := make(map[string][]string)
	for _, l := range links {
		if !known[l.From] {
			return fmt.Errorf("gantt: link %s references unknown from task %q: %w", l.ID, l.From, ErrTaskNotFound)
		}
		if !known[l.To] {
			return fmt.Errorf("gantt: link %s references unknown to task %q: %w", l.ID, l.To, ErrTaskNotFound)
		}
		if l.Elastic {
			adj[l.From] = append(adj[l.From], l.To)
		}
	}

	const (
		unvisited = 0
		visiting  = 1
		visited   = 2
	)

	state := make(map[string]int, len(tasks))
	for _, t := range tasks {
		state[t.ID] = unvisited
	}

	var dfs func(id string) bool
	dfs = func(id string) bool {
		state[id] = visiting
		for _, next := range adj[id] {
			switch state[next] {
			case visiting:
				return true
			case unvisited:
				if dfs(next) {
					return true
				}
			}
		}
		state[id] = visited
		return false
	}

	for id, s := range state {
		if s == unvisited {
			if dfs(id) {
				return ErrCycleDetected
			}
		}
	}

	return nil
}
