package cli

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/VladOS-0/hclust"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - headers
	colorGreen = lipgloss.Color("35")  // Green - merge nodes
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - borders, diagonal
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleNode   = lipgloss.NewStyle().Foreground(colorGreen)
	styleCell   = lipgloss.NewStyle().Padding(0, 1)
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// matrixTable renders the initial distance table with ids as headers.
func matrixTable(t *hclust.DistanceTable) string {
	ids := t.IDs()
	headers := make([]string, 0, len(ids)+1)
	headers = append(headers, "")
	for _, id := range ids {
		headers = append(headers, id.String())
	}

	m := t.Matrix()
	rows := make([][]string, len(ids))
	for i, id := range ids {
		row := make([]string, 0, len(ids)+1)
		row = append(row, id.String())
		for j := range ids {
			row = append(row, formatFloat(m.At(i, j)))
		}
		rows[i] = row
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleDim).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow || col == 0:
				return styleHeader.Padding(0, 1)
			case row == col-1:
				return styleDim.Padding(0, 1)
			default:
				return styleCell
			}
		}).
		Render()
}

// mergeTable renders the merges in the order they happened.
func mergeTable(d *hclust.Dendrogram) string {
	rows := make([][]string, 0, len(d.Merges()))
	for i, m := range d.Merges() {
		n, _ := d.Node(m.Node)
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			m.Node.String(),
			describe(d, m.Left),
			describe(d, m.Right),
			formatFloat(m.Distance),
			strconv.Itoa(n.Size),
		})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleDim).
		Headers("Step", "Node", "Left", "Right", "Distance", "Size").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			if col == 1 {
				return styleNode.Padding(0, 1)
			}
			return styleCell
		}).
		Render()
}

// describe names a child as "LEAF 3 (name)" or "NODE 4".
func describe(d *hclust.Dendrogram, id hclust.ElementID) string {
	n, _ := d.Node(id)
	s := n.Kind.String() + " " + id.String()
	if n.IsLeaf() && n.Name != "" && n.Name != id.String() {
		s += " (" + n.Name + ")"
	}
	return s
}
