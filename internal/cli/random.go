package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/VladOS-0/hclust"
	"github.com/VladOS-0/hclust/internal/dataset"
)

// randomOpts holds the flags for the random command.
type randomOpts struct {
	count  int     // number of elements
	seed   int64   // random seed (0 = time based)
	min    float64 // smallest quantized distance
	max    float64 // largest quantized distance
	points bool    // draw points in a rectangle instead of distances
}

// randomCommand creates the random command.
// By default every pair gets a random distance in [min, max] rounded to an
// integer; --points draws points from the default rectangle instead.
func (c *CLI) randomCommand() *cobra.Command {
	opts := randomOpts{
		count: dataset.DefaultCount,
		min:   dataset.DefaultMinDistance,
		max:   dataset.DefaultMaxDistance,
	}
	var out outputOpts

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Cluster randomly generated elements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.count < 0 {
				return fmt.Errorf("count must be >= 0, got %d", opts.count)
			}
			seed := opts.seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(seed))
			c.Logger.Debug("Generating elements", "count", opts.count, "seed", seed, "points", opts.points)

			prog := newProgress(c.Logger)
			var (
				d   *hclust.Dendrogram
				err error
			)
			if opts.points {
				bounds := dataset.DefaultBounds()
				var points [][]float64
				points, err = dataset.RandomPoints(rng, opts.count, bounds)
				if err != nil {
					return err
				}
				for i, p := range points {
					c.Logger.Debug("Point", "id", i+1, "x", p[0], "y", p[1])
				}
				d, err = hclust.ClusterPoints(dataset.Names(opts.count), points, out.config(c))
			} else {
				d, err = dataset.ClusterQuantized(rng, opts.count, opts.min, opts.max, out.config(c))
			}
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Clustered %d elements", d.LeafCount()))

			return out.write(cmd.Context(), c, cmd.OutOrStdout(), d)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.count, "count", "n", opts.count, "number of elements")
	f.Int64Var(&opts.seed, "seed", 0, "random seed (0 = time based)")
	f.Float64Var(&opts.min, "min", opts.min, "smallest random distance")
	f.Float64Var(&opts.max, "max", opts.max, "largest random distance")
	f.BoolVar(&opts.points, "points", false, "draw random points instead of random distances")
	out.register(cmd)
	return cmd
}
