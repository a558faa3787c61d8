package depgraph

import (
	"cmp"
	"io"
	"slices"
	"strings"

	"github.com/matzehuels/changegraph/pkg/change"
	"github.com/matzehuels/changegraph/pkg/errors"
)

const (
	// GraphName is the fixed name of the emitted digraph.
	GraphName = "automerge"

	// NodePrefix starts every node identifier so it is never a bare numeral.
	NodePrefix = "N"
)

// Options configures DOT generation.
type Options struct {
	// HashLength is the number of hex characters kept per node identifier.
	// Zero, negative, or anything at or above the full encoded length keeps
	// the whole hash.
	HashLength int
}

// NodeID returns the DOT identifier for h: [NodePrefix] followed by the
// lowercase hex encoding of h, truncated to length characters when
// 0 < length < 2*[change.HashSize].
func NodeID(h change.Hash, length int) string {
	id := h.String()
	if length > 0 && length < len(id) {
		id = id[:length]
	}
	return NodePrefix + id
}

// WriteDOT writes the DOT document for edges to w.
//
// Statements are ordered by source hash, then target hash, so any ordering of
// the same edge multiset yields the same bytes. Duplicate edges are kept.
//
// The first write that fails stops serialization; the error carries
// [errors.ErrCodeSinkWrite] and whatever was already written stays in w.
func WriteDOT(w io.Writer, edges []Edge, opts Options) error {
	if _, err := io.WriteString(w, "digraph "+GraphName+" {\n"); err != nil {
		return errors.Wrap(errors.ErrCodeSinkWrite, err, "write graph header")
	}

	var line strings.Builder
	for i, e := range SortEdges(edges) {
		line.Reset()
		line.WriteString(NodeID(e.From, opts.HashLength))
		line.WriteString(" -> ")
		line.WriteString(NodeID(e.To, opts.HashLength))
		line.WriteString(";\n")
		if _, err := io.WriteString(w, line.String()); err != nil {
			return errors.Wrap(errors.ErrCodeSinkWrite, err, "write edge %d", i)
		}
	}

	if _, err := io.WriteString(w, "}\n"); err != nil {
		return errors.Wrap(errors.ErrCodeSinkWrite, err, "write graph footer")
	}
	return nil
}

// SortEdges returns a copy of edges ordered by From, then To, under
// [change.Hash.Compare]. Equal edges keep their relative order.
func SortEdges(edges []Edge) []Edge {
	sorted := slices.Clone(edges)
	slices.SortStableFunc(sorted, func(a, b Edge) int {
		return cmp.Or(a.From.Compare(b.From), a.To.Compare(b.To))
	})
	return sorted
}

// GraphDeps extracts the dependency edges of changes and writes them to w as
// a DOT document. See [ExtractEdges] and [WriteDOT].
func GraphDeps(w io.Writer, changes []change.Change, opts Options) error {
	return WriteDOT(w, ExtractEdges(changes), opts)
}

// ToDOT returns the DOT document for changes as a string.
func ToDOT(changes []change.Change, opts Options) string {
	var b strings.Builder
	// strings.Builder never fails a write.
	_ = GraphDeps(&b, changes, opts)
	return b.String()
}
