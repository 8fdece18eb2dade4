// Package render draws dendrograms with Graphviz.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/VladOS-0/hclust"
)

// Options configures dendrogram rendering.
type Options struct {
	// Detailed adds linkage distances and cluster sizes to merge-node labels.
	// When false, merge nodes show only their id.
	Detailed bool
}

// ToDOT converts a dendrogram to Graphviz DOT format, root at the top.
// Leaves are labelled with their names; an empty dendrogram yields an empty graph.
func ToDOT(d *hclust.Dendrogram, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph dendrogram {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18];\n")
	buf.WriteString("  edge [arrowhead=none];\n")
	buf.WriteString("\n")

	for _, leaf := range d.Leaves() {
		fmt.Fprintf(&buf, "  %q [label=%q, shape=ellipse];\n", leaf.ID.String(), leafLabel(leaf))
	}

	var edges []string
	d.Walk(func(n hclust.Node) bool {
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=lightgrey];\n", n.ID.String(), nodeLabel(n, opts.Detailed))
		edges = append(edges,
			fmt.Sprintf("  %q -> %q;\n", n.ID.String(), n.Left.String()),
			fmt.Sprintf("  %q -> %q;\n", n.ID.String(), n.Right.String()),
		)
		return true
	})

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
	}
	buf.WriteString("}\n")
	return buf.String()
}

func leafLabel(n hclust.Node) string {
	if n.Name == "" || n.Name == n.ID.String() {
		return n.ID.String()
	}
	return n.Name + " (" + n.ID.String() + ")"
}

func nodeLabel(n hclust.Node, detailed bool) string {
	if !detailed {
		return n.ID.String()
	}
	return fmt.Sprintf("%s\nd=%s\nsize=%d", n.ID, strconv.FormatFloat(n.Distance, 'g', -1, 64), n.Size)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
