// Package pkg provides the libraries behind changegraph.
//
// # Overview
//
// changegraph turns a content-addressed change log, where every change names
// the hashes of the changes it depends on, into a Graphviz DOT graph. The
// pkg directory is organized as:
//
//  1. [change] - Hash and change record types
//  2. [depgraph] - Edge extraction and DOT serialization
//  3. [store] - JSON change log reading and writing
//  4. [render] - Graphviz rendering to SVG, PNG and PDF
//  5. [pipeline] - Orchestration (load → graph → render → write)
//  6. [cache], [config], [errors], [observability] - Supporting infrastructure
//
// # Architecture
//
//	Change log (JSON)
//	       ↓
//	  [store] package (decode records)
//	       ↓
//	  [depgraph] package (edges + DOT text)
//	       ↓
//	  [render] package (optional Graphviz layout)
//	       ↓
//	  DOT/SVG/PNG/PDF output
//
// # Quick Start
//
//	changes, err := store.Load("changes.json")
//	if err != nil {
//	    return err
//	}
//	return depgraph.GraphDeps(os.Stdout, changes, depgraph.Options{HashLength: 7})
//
// [change]: github.com/matzehuels/changegraph/pkg/change
// [depgraph]: github.com/matzehuels/changegraph/pkg/depgraph
// [store]: github.com/matzehuels/changegraph/pkg/store
// [render]: github.com/matzehuels/changegraph/pkg/render
// [pipeline]: github.com/matzehuels/changegraph/pkg/pipeline
// [cache]: github.com/matzehuels/changegraph/pkg/cache
// [config]: github.com/matzehuels/changegraph/pkg/config
// [errors]: github.com/matzehuels/changegraph/pkg/errors
// [observability]: github.com/matzehuels/changegraph/pkg/observability
package pkg
