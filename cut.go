package hclust

import "fmt"

// CutK returns flat cluster labels for each leaf, in input order, after the
// first n-k merges, leaving k clusters. Labels are numbered from 0 in order of
// each cluster's first leaf.
func (d *Dendrogram) CutK(k int) ([]int, error) {
	if d.leaves == 0 {
		return []int{}, nil
	}
	if k < 1 || k > d.leaves {
		return nil, fmt.Errorf("hclust: cluster count must be in [1, %d], got %d", d.leaves, k)
	}
	if len(d.merges) != d.leaves-1 {
		return nil, fmt.Errorf("hclust: dendrogram is incomplete (%d of %d merges)", len(d.merges), d.leaves-1)
	}
	return d.cut(func(i int, _ MergeStep) bool { return i < d.leaves-k }), nil
}

// CutDistance returns flat cluster labels after applying every merge whose
// linkage distance is at most threshold.
func (d *Dendrogram) CutDistance(threshold float64) []int {
	return d.cut(func(_ int, m MergeStep) bool { return m.Distance <= threshold })
}

func (d *Dendrogram) cut(apply func(i int, m MergeStep) bool) []int {
	uf := NewUnionFind(d.leaves)

	// rep maps every node id to one leaf index below it.
	rep := make([]int, len(d.nodes)+1)
	for i := 0; i < d.leaves; i++ {
		rep[i+1] = i
	}
	for i, m := range d.merges {
		rep[m.Node] = rep[m.Left]
		if apply(i, m) {
			uf.Union(rep[m.Left], rep[m.Right])
		}
	}

	labels := make([]int, d.leaves)
	next := 0
	byRoot := make(map[int]int)
	for i := range labels {
		root := uf.Find(i)
		label, ok := byRoot[root]
		if !ok {
			label = next
			byRoot[root] = label
			next++
		}
		labels[i] = label
	}
	return labels
}
