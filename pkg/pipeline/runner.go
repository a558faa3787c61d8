package pipeline

import (
	"bytes"
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/changegraph/pkg/cache"
	"github.com/matzehuels/changegraph/pkg/change"
	"github.com/matzehuels/changegraph/pkg/depgraph"
	"github.com/matzehuels/changegraph/pkg/errors"
	"github.com/matzehuels/changegraph/pkg/observability"
	"github.com/matzehuels/changegraph/pkg/render"
	"github.com/matzehuels/changegraph/pkg/store"
)

// Runner executes pipeline runs against a cache and logger.
//
// The Runner keeps no per-run state, so one Runner can serve several runs.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger

	// Stdin and Stdout back the "-" input and output paths.
	Stdin  io.Reader
	Stdout io.Writer
}

// NewRunner creates a runner. A nil cache disables caching and a nil logger
// uses log.Default().
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Logger: logger,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}
}

// Execute runs load → graph → render → write.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()

	loadStart := time.Now()
	hooks.OnLoadStart(ctx, opts.Input)
	changes, err := r.Load(opts.Input)
	loadTime := time.Since(loadStart)
	hooks.OnLoadComplete(ctx, opts.Input, len(changes), loadTime, err)
	if err != nil {
		return nil, err
	}
	edges := depgraph.ExtractEdges(changes)

	result := &Result{Format: opts.Format}
	result.Stats = Stats{
		Changes:  len(changes),
		Edges:    len(edges),
		Nodes:    len(depgraph.Nodes(edges)),
		LoadTime: loadTime,
	}
	r.Logger.Debug("loaded change log",
		"input", opts.Input,
		"changes", result.Stats.Changes,
		"edges", result.Stats.Edges,
		"nodes", result.Stats.Nodes,
		"duration", result.Stats.LoadTime)

	graphOpts := depgraph.Options{HashLength: opts.HashLength}

	renderStart := time.Now()
	hooks.OnRenderStart(ctx, opts.Format, len(edges))
	result.Bytes, result.Cached, err = r.produce(ctx, opts, edges, graphOpts)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, opts.Format, result.Bytes, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("wrote graph",
		"output", opts.Output,
		"format", result.Format,
		"edges", result.Stats.Edges,
		"bytes", result.Bytes,
		"cached", result.Cached,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// produce writes the graph in opts.Format to opts.Output and reports the
// bytes written and whether a rendered artifact came from the cache.
func (r *Runner) produce(ctx context.Context, opts Options, edges []depgraph.Edge, graphOpts depgraph.Options) (int, bool, error) {
	if opts.Format == render.FormatDOT && !opts.Validate {
		n, err := r.writeDOT(opts.Output, edges, graphOpts)
		return n, false, err
	}

	dot := dotString(edges, graphOpts)
	var (
		payload []byte
		cached  bool
		err     error
	)
	if opts.Format == render.FormatDOT {
		if err := render.Validate(dot); err != nil {
			return 0, false, err
		}
		payload = []byte(dot)
	} else {
		payload, cached, err = r.Render(ctx, dot, opts)
		if err != nil {
			return 0, false, err
		}
	}

	if err := r.writeBytes(opts.Output, payload); err != nil {
		return 0, cached, err
	}
	return len(payload), cached, nil
}

// Load reads the change log at input, or from r.Stdin when input is "-".
func (r *Runner) Load(input string) ([]change.Change, error) {
	if input == Stdio {
		return store.Read(r.Stdin)
	}
	return store.Load(input)
}

// Render produces opts.Format output for dot, consulting the cache first.
// Cache failures are logged and otherwise ignored.
func (r *Runner) Render(ctx context.Context, dot string, opts Options) ([]byte, bool, error) {
	key := cache.ArtifactKey(dot, opts.Format, opts.Scale)
	hooks := observability.Cache()
	if data, hit, err := r.Cache.Get(ctx, key); err != nil {
		r.Logger.Debug("cache read failed", "err", err)
	} else if hit {
		hooks.OnCacheHit(ctx, opts.Format)
		return data, true, nil
	}
	hooks.OnCacheMiss(ctx, opts.Format)

	data, err := render.Render(ctx, dot, opts.Format, render.Options{Scale: opts.Scale})
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, data, opts.CacheTTL); err != nil {
		r.Logger.Debug("cache write failed", "err", err)
	} else {
		hooks.OnCacheSet(ctx, opts.Format, len(data))
	}
	return data, false, nil
}

// Close releases the runner's cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// writeDOT streams the document into the output sink. The sink is owned for
// the duration of the call and closed on every path.
func (r *Runner) writeDOT(output string, edges []depgraph.Edge, opts depgraph.Options) (n int, err error) {
	w, closeFn, err := r.openOutput(output)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := closeFn(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeSinkWrite, cerr, "close output %s", output)
		}
	}()

	cw := &countingWriter{w: w}
	if err := depgraph.WriteDOT(cw, edges, opts); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

func (r *Runner) writeBytes(output string, data []byte) (err error) {
	w, closeFn, err := r.openOutput(output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeFn(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeSinkWrite, cerr, "close output %s", output)
		}
	}()

	if _, err := w.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeSinkWrite, err, "write graph to %s", output)
	}
	return nil
}

func (r *Runner) openOutput(output string) (io.Writer, func() error, error) {
	if output == Stdio {
		return r.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(output)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create output %s", output)
	}
	return f, f.Close, nil
}

func dotString(edges []depgraph.Edge, opts depgraph.Options) string {
	var buf bytes.Buffer
	// bytes.Buffer never fails a write.
	_ = depgraph.WriteDOT(&buf, edges, opts)
	return buf.String()
}

type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
