package hclust

import "strconv"

// ElementID identifies a node for the lifetime of one clustering run.
// Leaves are numbered 1..N; merge nodes continue from N+1 in creation order.
type ElementID int

func (id ElementID) String() string { return strconv.Itoa(int(id)) }

// Kind distinguishes original elements from merge nodes.
type Kind uint8

const (
	Leaf Kind = iota
	Merge
)

func (k Kind) String() string {
	if k == Merge {
		return "NODE"
	}
	return "LEAF"
}

// Node is a leaf or an internal node of the merge tree.
// Children are referenced by id; the owning arena resolves them.
type Node struct {
	ID   ElementID
	Kind Kind

	// Left and Right are the merged children (Merge nodes only).
	// Left always holds the lower id.
	Left  ElementID
	Right ElementID

	// Distance is the linkage distance at which Left and Right merged.
	Distance float64

	// Size is the number of leaves below this node (1 for a leaf).
	Size int

	// Name is the caller-assigned identifier of a leaf.
	Name string

	// Index is the position of a leaf in the caller's input, -1 for merge nodes.
	Index int
}

// IsLeaf reports whether n is an original element.
func (n Node) IsLeaf() bool { return n.Kind == Leaf }

// MergeStep records one iteration of the merge loop.
type MergeStep struct {
	Node     ElementID
	Left     ElementID
	Right    ElementID
	Distance float64
}
