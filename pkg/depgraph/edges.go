package depgraph

import (
	"slices"

	"github.com/matzehuels/changegraph/pkg/change"
)

// Edge is a directed dependency: From depends on To.
type Edge struct {
	From change.Hash
	To   change.Hash
}

// ExtractEdges returns one edge per declared dependency, ordered by change and
// then by the change's dependency list. Duplicate declarations produce
// duplicate edges and dangling dependencies are kept.
func ExtractEdges(changes []change.Change) []Edge {
	n := 0
	for _, c := range changes {
		n += len(c.Deps)
	}

	edges := make([]Edge, 0, n)
	for _, c := range changes {
		for _, dep := range c.Deps {
			edges = append(edges, Edge{From: c.Hash, To: dep})
		}
	}
	return edges
}

// Nodes returns the distinct endpoints of edges in ascending hash order.
func Nodes(edges []Edge) []change.Hash {
	nodes := make([]change.Hash, 0, 2*len(edges))
	for _, e := range edges {
		nodes = append(nodes, e.From, e.To)
	}
	slices.SortFunc(nodes, change.Hash.Compare)
	return slices.Compact(nodes)
}
