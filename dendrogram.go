package hclust

import "slices"

// Dendrogram is the read-only result of a clustering run.
type Dendrogram struct {
	nodes   []Node
	merges  []MergeStep
	leaves  int
	initial *DistanceTable
	root    ElementID
}

// Root returns the root of the tree. It reports false when there were no
// elements or the merge loop has not finished.
func (d *Dendrogram) Root() (Node, bool) {
	if d.root == 0 {
		return Node{}, false
	}
	return d.Node(d.root)
}

// Node returns the node with the given id.
func (d *Dendrogram) Node(id ElementID) (Node, bool) {
	if id < 1 || int(id) > len(d.nodes) {
		return Node{}, false
	}
	return d.nodes[id-1], true
}

// Children returns the two children of a merge node.
func (d *Dendrogram) Children(id ElementID) (left, right Node, ok bool) {
	n, ok := d.Node(id)
	if !ok || n.IsLeaf() {
		return Node{}, Node{}, false
	}
	return d.nodes[n.Left-1], d.nodes[n.Right-1], true
}

// Len returns the number of nodes, leaves included.
func (d *Dendrogram) Len() int { return len(d.nodes) }

// LeafCount returns the number of original elements.
func (d *Dendrogram) LeafCount() int { return d.leaves }

// Leaves returns the original elements in input order.
func (d *Dendrogram) Leaves() []Node { return slices.Clone(d.nodes[:d.leaves]) }

// Merges returns every merge in the order it happened.
func (d *Dendrogram) Merges() []MergeStep { return slices.Clone(d.merges) }

// Initial returns a copy of the distance table as it was before any merge,
// or nil if distances were never seeded.
func (d *Dendrogram) Initial() *DistanceTable {
	if d.initial == nil {
		return nil
	}
	return d.initial.Clone()
}

// Walk visits the merge nodes below the root in pre-order, left child before
// right. Leaves are not visited. Returning false from fn stops the walk.
func (d *Dendrogram) Walk(fn func(Node) bool) {
	if d.root == 0 {
		return
	}
	stack := []ElementID{d.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := d.nodes[id-1]
		if n.IsLeaf() {
			continue
		}
		if !fn(n) {
			return
		}
		stack = append(stack, n.Right, n.Left)
	}
}

// LeafOrder returns leaf ids in the left-to-right order of the tree.
func (d *Dendrogram) LeafOrder() []ElementID {
	if d.root == 0 {
		return nil
	}
	order := make([]ElementID, 0, d.leaves)
	stack := []ElementID{d.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := d.nodes[id-1]
		if n.IsLeaf() {
			order = append(order, id)
			continue
		}
		stack = append(stack, n.Right, n.Left)
	}
	return order
}
