package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/VladOS-0/hclust"
	"github.com/VladOS-0/hclust/internal/render"
)

// outputOpts holds the flags shared by every clustering command.
type outputOpts struct {
	strategy string // nearest-pair strategy: auto, scan, parallel_scan, heap
	workers  int    // goroutines for parallel_scan (0 = NumCPU)
	matrix   bool   // print the initial distance table
	merges   bool   // print the merge table
	linkage  bool   // print scipy-style linkage rows
	cut      int    // print flat labels for this many clusters (0 = off)
	dot      string // write Graphviz DOT to this path
	svg      string // write an SVG rendering to this path
	detailed bool   // include distances and sizes in DOT labels
}

func (o *outputOpts) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.strategy, "strategy", string(hclust.StrategyAuto), "nearest-pair strategy: auto, scan, parallel_scan, heap")
	f.IntVar(&o.workers, "workers", 0, "goroutines for parallel_scan (0 = number of CPUs)")
	f.BoolVar(&o.matrix, "matrix", false, "print the initial distance table")
	f.BoolVar(&o.merges, "merges", false, "print every merge as a table")
	f.BoolVar(&o.linkage, "linkage", false, "print scipy-style linkage rows")
	f.IntVar(&o.cut, "cut", 0, "print flat cluster labels for K clusters")
	f.StringVar(&o.dot, "dot", "", "write the dendrogram as Graphviz DOT to `file`")
	f.StringVar(&o.svg, "svg", "", "render the dendrogram as SVG to `file`")
	f.BoolVar(&o.detailed, "detailed", false, "show distances and sizes in DOT/SVG labels")
}

func (o *outputOpts) config(c *CLI) hclust.Config {
	cfg := hclust.DefaultConfig()
	cfg.Strategy = hclust.Strategy(o.strategy)
	cfg.Workers = o.workers
	cfg.Logger = c.Logger
	return cfg
}

// write prints the requested views of d to w and writes any output files.
func (o *outputOpts) write(ctx context.Context, c *CLI, w io.Writer, d *hclust.Dendrogram) error {
	if o.matrix {
		if t := d.Initial(); t != nil && t.Len() > 0 {
			fmt.Fprintln(w, styleTitle.Render("Initial distances"))
			fmt.Fprintln(w, matrixTable(t))
			fmt.Fprintln(w)
		}
	}

	if o.merges && len(d.Merges()) > 0 {
		fmt.Fprintln(w, styleTitle.Render("Merges"))
		fmt.Fprintln(w, mergeTable(d))
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, styleTitle.Render("Hierarchy"))
	if root, ok := d.Root(); !ok {
		fmt.Fprintln(w, styleDim.Render("no elements"))
	} else if root.IsLeaf() {
		fmt.Fprintln(w, styleDim.Render("single element "+describe(d, root.ID)+", nothing to merge"))
	} else if err := d.WriteReport(w); err != nil {
		return err
	}

	if o.linkage {
		fmt.Fprintln(w)
		fmt.Fprintln(w, styleTitle.Render("Linkage"))
		for _, row := range d.Linkage() {
			fmt.Fprintf(w, "%g %g %g %g\n", row[0], row[1], row[2], row[3])
		}
	}

	if o.cut > 0 {
		labels, err := d.CutK(o.cut)
		if err != nil {
			return err
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf("Clusters (k=%d)", o.cut)))
		for i, leaf := range d.Leaves() {
			fmt.Fprintf(w, "%s\t%d\n", describe(d, leaf.ID), labels[i])
		}
	}

	if o.dot == "" && o.svg == "" {
		return nil
	}
	dot := render.ToDOT(d, render.Options{Detailed: o.detailed})
	if o.dot != "" {
		if err := os.WriteFile(o.dot, []byte(dot), 0o644); err != nil {
			return fmt.Errorf("write DOT: %w", err)
		}
		c.Logger.Info("Wrote DOT", "path", o.dot)
	}
	if o.svg != "" {
		svg, err := render.RenderSVG(ctx, dot)
		if err != nil {
			return err
		}
		if err := os.WriteFile(o.svg, svg, 0o644); err != nil {
			return fmt.Errorf("write SVG: %w", err)
		}
		c.Logger.Info("Wrote SVG", "path", o.svg)
	}
	return nil
}
