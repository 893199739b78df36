package bfs

import "slices"

// RecordParents returns an explore hook that stores child→parent in parents.
// Pass it to WithOnExplore to capture the search tree of a run.
func RecordParents[K comparable](parents map[K]K) func(parent, child K) {
	return func(parent, child K) {
		parents[child] = parent
	}
}

// PathFromParents walks parents back from target until an id without a
// parent is reached (the search root) and returns the path root→target,
// both ends included.
//
// Returns nil when target itself has no parent entry: the caller should
// special-case the start vertex, whose path is just [start].
// Parent maps produced by a search are trees; a cyclic map is cut after
// len(parents) steps.
func PathFromParents[K comparable](parents map[K]K, target K) []K {
	if _, ok := parents[target]; !ok {
		return nil
	}

	path := []K{target}
	cur := target
	for range len(parents) {
		p, ok := parents[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)

	return path
}
