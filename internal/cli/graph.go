package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/changegraph/pkg/pipeline"
	"github.com/matzehuels/changegraph/pkg/render"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	hashLength int     // hex characters per node identifier, 0 = full
	format     string  // output format, empty = infer from output path
	scale      float64 // PNG scale factor
	validate   bool    // parse DOT output with Graphviz before writing
	noCache    bool    // skip the rendered-artifact cache
}

// graphCommand creates the graph command. Flags left unset fall back to the
// config file.
func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph <input> <output>",
		Short: "Write the dependency graph of a change log",
		Long: `Write the dependency graph of a change log.

Input is a JSON change log ("-" for stdin). Output is written as DOT unless
--format is set or the output path ends in .svg, .png or .pdf ("-" for stdout).`,
		Example: `  changegraph graph changes.json deps.dot
  changegraph graph changes.json deps.svg --hash-length 7
  cat changes.json | changegraph graph - - | dot -Tpng > deps.png`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if !flags.Changed("hash-length") {
				opts.hashLength = cfg.HashLength
			}
			if !flags.Changed("scale") {
				opts.scale = cfg.Scale
			}
			if !flags.Changed("no-cache") {
				opts.noCache = cfg.NoCache
			}
			if !flags.Changed("format") && render.FormatFromPath(args[1]) == render.FormatDOT {
				opts.format = cfg.Format
			}

			p := pipeline.Options{
				Input:      args[0],
				Output:     args[1],
				HashLength: opts.hashLength,
				Format:     opts.format,
				Scale:      opts.scale,
				Validate:   opts.validate,
				CacheTTL:   cfg.CacheTTL,
			}
			return c.runGraph(cmd, p, opts.noCache)
		},
	}

	cmd.Flags().IntVarP(&opts.hashLength, "hash-length", "l", 0, "hex characters per node identifier (0 = full hash)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: dot, svg, png, pdf (default: from output extension)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "PNG scale factor (requires rsvg-convert)")
	cmd.Flags().BoolVar(&opts.validate, "validate", false, "check DOT output with Graphviz before writing")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the rendered-artifact cache")

	return cmd
}

func (c *CLI) runGraph(cmd *cobra.Command, opts pipeline.Options, noCache bool) error {
	logger := loggerFromContext(cmd.Context())
	runner := c.newRunner(noCache)
	defer runner.Close()

	prog := newProgress(logger)
	res, err := runner.Execute(cmd.Context(), opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Graphed %d changes", res.Stats.Changes))

	// Status would interleave with the document on stdout.
	if opts.Output == pipeline.Stdio {
		return nil
	}
	printSuccess(c.Out, "Wrote %s graph", res.Format)
	printFile(c.Out, opts.Output)
	printStats(c.Out, res.Stats.Changes, res.Stats.Edges, res.Stats.Nodes, res.Cached)
	return nil
}
