package depgraph

import (
	"slices"

	"github.com/matzehuels/changegraph/pkg/change"
)

// Stats summarizes a change log and the graph it produces.
type Stats struct {
	Changes  int // records in the log
	Edges    int // edge statements in the document
	Nodes    int // distinct edge endpoints
	Roots    int // changes without dependencies
	Dangling int // distinct dependencies not present in the log

	// Collisions lists groups of distinct hashes that share a node
	// identifier at the requested hash length, in ascending hash order.
	Collisions []Collision
}

// Collision is a set of hashes rendered under the same node identifier.
type Collision struct {
	ID     string
	Hashes []change.Hash
}

// Summarize computes [Stats] for changes at the given identifier length.
// It never alters what [WriteDOT] produces.
func Summarize(changes []change.Change, hashLength int) Stats {
	edges := ExtractEdges(changes)
	nodes := Nodes(edges)

	known := make(map[change.Hash]bool, len(changes))
	s := Stats{Changes: len(changes), Edges: len(edges), Nodes: len(nodes)}
	for _, c := range changes {
		known[c.Hash] = true
		if c.IsRoot() {
			s.Roots++
		}
	}

	// nodes is sorted, so equal identifiers are adjacent.
	for i := 0; i < len(nodes); {
		id := NodeID(nodes[i], hashLength)
		j := i + 1
		for j < len(nodes) && NodeID(nodes[j], hashLength) == id {
			j++
		}
		if j-i > 1 {
			s.Collisions = append(s.Collisions, Collision{ID: id, Hashes: slices.Clone(nodes[i:j])})
		}
		i = j
	}

	for _, n := range nodes {
		if !known[n] {
			s.Dangling++
		}
	}
	return s
}
