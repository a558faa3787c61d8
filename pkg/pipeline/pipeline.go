// Package pipeline wires the change store, DOT serialization, rendering and
// caching into a single load → graph → render → write run.
//
// Both the graph and stats commands of the CLI go through a [Runner] so that
// logging, caching and error codes behave the same everywhere.
//
// # Stages
//
//  1. Load: read the change log from a file or stdin ([store])
//  2. Graph: extract dependency edges and serialize DOT ([depgraph])
//  3. Render: convert DOT to svg/png/pdf with Graphviz, through the cache ([render])
//  4. Write: hand the bytes to the output file or stdout
//
// DOT output skips stage 3 and streams straight from [depgraph.GraphDeps] into
// the output sink.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	res, err := runner.Execute(ctx, pipeline.Options{
//	    Input:      "changes.json",
//	    Output:     "graph.svg",
//	    HashLength: 7,
//	})
//
// [store]: github.com/matzehuels/changegraph/pkg/store
// [depgraph]: github.com/matzehuels/changegraph/pkg/depgraph
// [render]: github.com/matzehuels/changegraph/pkg/render
package pipeline

import (
	"time"

	"github.com/matzehuels/changegraph/pkg/cache"
	"github.com/matzehuels/changegraph/pkg/errors"
	"github.com/matzehuels/changegraph/pkg/render"
)

// Stdio is the path that selects stdin for Input and stdout for Output.
const Stdio = "-"

// Options configures a pipeline run.
type Options struct {
	Input  string // change log path, or "-" for stdin
	Output string // destination path, or "-" for stdout

	// HashLength is the number of hex characters kept per node identifier.
	// Zero keeps the full hash.
	HashLength int

	// Format selects the output format. Empty infers it from Output.
	Format string

	// Scale enlarges PNG output via rsvg-convert.
	Scale float64

	// Validate parses the generated DOT with Graphviz before writing.
	// Image formats are always parsed by Graphviz while rendering.
	Validate bool

	// CacheTTL is the lifetime of cached artifacts. Zero uses cache.TTLArtifact.
	CacheTTL time.Duration
}

// ValidateAndSetDefaults checks the options and fills in Format and CacheTTL.
func (o *Options) ValidateAndSetDefaults() error {
	if err := errors.ValidatePath(o.Input); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "input")
	}
	if err := errors.ValidatePath(o.Output); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "output")
	}
	if err := errors.ValidateHashLength(o.HashLength); err != nil {
		return err
	}
	if o.Format == "" {
		o.Format = render.FormatFromPath(o.Output)
	}
	if err := errors.ValidateFormat(o.Format, render.Formats); err != nil {
		return err
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale cannot be negative: %g", o.Scale)
	}
	if o.CacheTTL <= 0 {
		o.CacheTTL = cache.TTLArtifact
	}
	return nil
}

// Result describes a completed run.
type Result struct {
	Format string // format that was written
	Bytes  int    // bytes written to the output
	Cached bool   // whether the rendered artifact came from the cache
	Stats  Stats
}

// Stats contains graph sizes and stage timings.
type Stats struct {
	Changes    int
	Edges      int
	Nodes      int
	LoadTime   time.Duration
	RenderTime time.Duration
}
