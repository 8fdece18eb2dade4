package hclust

// Linkage returns the merges in scipy linkage format: each row is
// [left, right, distance, size] with 0-based ids, so leaf k becomes k-1 and
// merge nodes are numbered from n in merge order. Left holds the lower id.
func (d *Dendrogram) Linkage() [][4]float64 {
	if len(d.merges) == 0 {
		return nil
	}
	rows := make([][4]float64, 0, len(d.merges))
	for _, m := range d.merges {
		n := d.nodes[m.Node-1]
		rows = append(rows, [4]float64{
			float64(m.Left - 1),
			float64(m.Right - 1),
			m.Distance,
			float64(n.Size),
		})
	}
	return rows
}
