// Package depgraph turns a change log into a Graphviz DOT dependency graph.
//
// # Overview
//
// Each [change.Change] names the changes it depends on. depgraph flattens
// those declarations into directed edges and writes them as a DOT digraph
// that external tools (dot, xdot, the [render] package) can lay out.
//
// The work is split into two plain functions:
//
//   - [ExtractEdges] walks the changes and emits one [Edge] per declared
//     dependency, in log order.
//   - [WriteDOT] writes the document for a given edge sequence.
//
// [GraphDeps] composes the two, and [ToDOT] returns the document as a string.
//
// # Output Format
//
// The document has a fixed header and footer with one statement per edge:
//
//	digraph automerge {
//	N5d2c... -> N0a91...;
//	}
//
// No node statements are emitted; an empty edge set yields only the header
// and footer. Edges are never deduplicated.
//
// # Node Identifiers
//
// [NodeID] hex-encodes the hash, keeps the first [Options.HashLength]
// characters when set, and prefixes "N" so the identifier can never be read
// as a numeral. Truncated identifiers are not checked for collisions: two
// hashes sharing a prefix render as the same node. [Summarize] reports such
// collisions for callers that want to warn about them.
//
// # Determinism
//
// Output depends only on the edge sequence and the hash length. Nothing in
// this package iterates over maps or consults the clock.
package depgraph
