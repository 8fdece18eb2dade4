package hclust

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

func formatDistance(d float64) string {
	return strconv.FormatFloat(d, 'g', -1, 64)
}

// WriteReport writes one line per merge node in pre-order:
//
//	NODE 5 distance=4 left=NODE 4 right=LEAF 3
//
// Nothing is written for a tree without merges.
func (d *Dendrogram) WriteReport(w io.Writer) error {
	bw := bufio.NewWriter(w)
	var err error
	d.Walk(func(n Node) bool {
		left, right := d.nodes[n.Left-1], d.nodes[n.Right-1]
		_, err = fmt.Fprintf(bw, "NODE %d distance=%s left=%s %d right=%s %d\n",
			n.ID, formatDistance(n.Distance), left.Kind, left.ID, right.Kind, right.ID)
		return err == nil
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

// Report returns the output of WriteReport as a string.
func (d *Dendrogram) Report() string {
	var sb strings.Builder
	_ = d.WriteReport(&sb)
	return sb.String()
}

// WriteMatrix writes the initial distance table with ids as row and column
// headers. Nothing is written when there are no elements.
func (d *Dendrogram) WriteMatrix(w io.Writer) error {
	if d.initial == nil {
		return nil
	}
	return WriteTable(w, d.initial)
}

// MatrixString returns the output of WriteMatrix as a string.
func (d *Dendrogram) MatrixString() string {
	var sb strings.Builder
	_ = d.WriteMatrix(&sb)
	return sb.String()
}

// WriteTable renders t as an aligned matrix ordered by id.
func WriteTable(w io.Writer, t *DistanceTable) error {
	ids := t.IDs()
	if len(ids) == 0 {
		return nil
	}
	m := t.Matrix()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := make([]string, 0, len(ids)+1)
	header = append(header, "")
	for _, id := range ids {
		header = append(header, id.String())
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	cells := make([]string, len(ids)+1)
	for i, id := range ids {
		cells[0] = id.String()
		for j := range ids {
			cells[j+1] = formatDistance(m.At(i, j))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}
