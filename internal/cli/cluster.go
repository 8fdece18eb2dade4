package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VladOS-0/hclust/internal/dataset"
)

// clusterCommand creates the cluster command for TOML datasets.
func (c *CLI) clusterCommand() *cobra.Command {
	var out outputOpts

	cmd := &cobra.Command{
		Use:   "cluster [file]",
		Short: "Cluster the elements of a TOML dataset",
		Long: `Cluster reads a TOML dataset holding either points ([[elements]] with
name and point) or a precomputed distance matrix (names and matrix) and
prints the merge hierarchy.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := dataset.Load(args[0])
			if err != nil {
				return err
			}
			c.Logger.Debug("Loaded dataset", "path", args[0], "elements", ds.Len(), "matrix", ds.HasMatrix())

			prog := newProgress(c.Logger)
			d, err := ds.Cluster(out.config(c))
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Clustered %d elements", d.LeafCount()))

			return out.write(cmd.Context(), c, cmd.OutOrStdout(), d)
		},
	}

	out.register(cmd)
	return cmd
}
