package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/changegraph/pkg/depgraph"
	"github.com/matzehuels/changegraph/pkg/errors"
)

// statsCommand creates the stats command, which summarizes a change log
// without writing a graph.
func (c *CLI) statsCommand() *cobra.Command {
	var hashLength int

	cmd := &cobra.Command{
		Use:   "stats <input>",
		Short: "Summarize a change log",
		Long: `Summarize a change log: record, edge and node counts, root changes and
dependencies that point outside the log.

With --hash-length, also list hashes that would share a node identifier in the
graph. Such collisions are rendered as a single node; stats only reports them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("hash-length") {
				cfg, err := c.loadConfig()
				if err != nil {
					return err
				}
				hashLength = cfg.HashLength
			}
			if err := errors.ValidateHashLength(hashLength); err != nil {
				return err
			}
			return c.runStats(cmd, args[0], hashLength)
		},
	}

	cmd.Flags().IntVarP(&hashLength, "hash-length", "l", 0, "hex characters per node identifier (0 = full hash)")

	return cmd
}

func (c *CLI) runStats(cmd *cobra.Command, input string, hashLength int) error {
	logger := loggerFromContext(cmd.Context())
	runner := c.newRunner(true)
	defer runner.Close()

	changes, err := runner.Load(input)
	if err != nil {
		return err
	}
	s := depgraph.Summarize(changes, hashLength)
	logger.Debug("summarized change log", "input", input, "changes", s.Changes, "collisions", len(s.Collisions))

	printInfo(c.Out, "%s", StyleTitle.Render(input))
	printKeyValue(c.Out, "changes", StyleNumber.Render(strconv.Itoa(s.Changes)))
	printKeyValue(c.Out, "edges", StyleNumber.Render(strconv.Itoa(s.Edges)))
	printKeyValue(c.Out, "nodes", StyleNumber.Render(strconv.Itoa(s.Nodes)))
	printKeyValue(c.Out, "roots", StyleNumber.Render(strconv.Itoa(s.Roots)))
	printKeyValue(c.Out, "dangling", StyleNumber.Render(strconv.Itoa(s.Dangling)))

	if len(s.Collisions) == 0 {
		return nil
	}
	printWarning(c.Out, "%d node identifiers are shared by several hashes at length %d", len(s.Collisions), hashLength)
	for _, col := range s.Collisions {
		for _, h := range col.Hashes {
			printDetail(c.Out, "%s  %s", col.ID, h)
		}
	}
	return nil
}
