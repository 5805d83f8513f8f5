package order

import (
	"fmt"
	"slices"
	"strings"
)

// Edge is a prerequisite relation: From must be ordered before To.
type Edge struct {
	From, To string
}

// ErrCyclicDependency indicates that the dependency graph contains at least
// one cycle. Remaining lists the nodes that could not be ordered, sorted.
type ErrCyclicDependency struct {
	Remaining []string
}

func (e *ErrCyclicDependency) Error() string {
	return fmt.Sprintf("order: cyclic dependency among [%s]", strings.Join(e.Remaining, ", "))
}

// Topological orders nodes so that every edge's From precedes its To, using
// Kahn's algorithm with a first-in-first-out zero-in-degree queue. Nodes
// referenced only by edges are included after the explicitly listed ones.
//
// A graph with a cycle fails with *ErrCyclicDependency naming the nodes left
// un-dequeued; a partial order is never returned silently.
func Topological(nodes []string, edges []Edge) ([]string, error) {
	inDegree := make(map[string]int, len(nodes))
	adjacency := make(map[string][]string, len(nodes))
	var all []string

	add := func(n string) {
		if _, ok := inDegree[n]; !ok {
			inDegree[n] = 0
			all = append(all, n)
		}
	}
	for _, n := range nodes {
		add(n)
	}
	for _, e := range edges {
		add(e.From)
		add(e.To)
		adjacency[e.From] = append(adjacency[e.From], e.To)
		inDegree[e.To]++
	}

	var queue []string
	for _, n := range all {
		if inDegree[n] == 0 {
			queue = append(queue, n)
		}
	}

	ordered := make([]string, 0, len(all))
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		ordered = append(ordered, n)
		for _, next := range adjacency[n] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if len(ordered) < len(all) {
		remaining := make([]string, 0, len(all)-len(ordered))
		for _, n := range all {
			if inDegree[n] > 0 {
				remaining = append(remaining, n)
			}
		}
		slices.Sort(remaining)
		return nil, &ErrCyclicDependency{Remaining: remaining}
	}
	return ordered, nil
}
