package hclust

import (
	"errors"
	"slices"

	"github.com/charmbracelet/log"
)

// ErrNotSeeded is returned when the merge loop starts before any distances
// were supplied for two or more leaves.
var ErrNotSeeded = errors.New("hclust: distances have not been seeded")

// Hierarchy owns every node of one clustering run and drives the merge loop.
// Leaves are added first, distances are seeded once, then Step or Run merges
// the active set down to a single root.
//
// A Hierarchy is not safe for concurrent use.
type Hierarchy struct {
	cfg    Config
	logger *log.Logger

	// nodes is the arena; node id k lives at nodes[k-1].
	nodes  []Node
	active []ElementID
	leaves int

	table   *DistanceTable
	initial *DistanceTable
	finder  pairFinder
	merges  []MergeStep

	seeded bool
	// err poisons the hierarchy after a precondition violation.
	err error
}

// NewHierarchy returns an empty hierarchy. It returns an error if cfg is invalid.
func NewHierarchy(cfg Config) (*Hierarchy, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &Hierarchy{
		cfg:    cfg,
		logger: cfg.Logger,
		table:  NewDistanceTable(),
	}, nil
}

// AddLeaf registers an original element and returns its id.
func (h *Hierarchy) AddLeaf(name string) (ElementID, error) {
	if h.seeded {
		return 0, ErrSealed
	}
	id := ElementID(len(h.nodes) + 1)
	h.nodes = append(h.nodes, Node{ID: id, Kind: Leaf, Size: 1, Name: name, Index: h.leaves})
	h.active = append(h.active, id)
	h.leaves++
	return id, nil
}

// Seed evaluates fn once for every unordered pair of leaves and stores the
// results. Negative, NaN and infinite values are rejected.
func (h *Hierarchy) Seed(fn PairFunc) error {
	if err := h.beginSeed(); err != nil {
		return err
	}
	cache := NewPairCache(fn)
	for i, a := range h.active {
		h.table.AddID(a)
		for _, b := range h.active[i+1:] {
			d := cache.Distance(a, b)
			if err := checkDistance("seed", a, b, d); err != nil {
				return h.fail(err)
			}
			h.table.Set(a, b, d)
		}
	}
	h.finishSeed()
	return nil
}

// SeedTable installs a copy of t. Its ids must be exactly the leaf ids.
func (h *Hierarchy) SeedTable(t *DistanceTable) error {
	if err := h.beginSeed(); err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		return h.fail(err)
	}
	ids := t.IDs()
	for _, id := range ids {
		if _, ok := slices.BinarySearch(h.active, id); !ok {
			return h.fail(precondition("seed", id, 0, 0, ErrUnknownElement))
		}
	}
	for _, id := range h.active {
		if !t.Has(id) {
			return h.fail(precondition("seed", id, 0, 0, ErrMissingDistance))
		}
	}
	h.table = t.Clone()
	h.finishSeed()
	return nil
}

func (h *Hierarchy) beginSeed() error {
	if h.err != nil {
		return h.err
	}
	if h.seeded {
		return errors.New("hclust: distances already seeded")
	}
	return nil
}

func (h *Hierarchy) finishSeed() {
	h.seeded = true
	h.initial = h.table.Clone()
	h.finder = newPairFinder(selectStrategy(h.cfg, len(h.active)), h.cfg.Workers)
	h.finder.seeded(h)
}

func (h *Hierarchy) fail(err error) error {
	h.err = err
	return err
}

// Step performs one merge. It reports false when fewer than two nodes are
// active. A precondition error leaves the hierarchy unchanged and poisoned.
func (h *Hierarchy) Step() (MergeStep, bool, error) {
	if h.err != nil {
		return MergeStep{}, false, h.err
	}
	if len(h.active) < 2 {
		return MergeStep{}, false, nil
	}
	if !h.seeded {
		return MergeStep{}, false, ErrNotSeeded
	}

	c, err := h.finder.nearest(h)
	if err != nil {
		return MergeStep{}, false, h.fail(err)
	}

	// Collect the single-linkage distances before touching any state.
	rowA, rowB := h.table.rows[c.a], h.table.rows[c.b]
	others := make([]ElementID, 0, len(h.active)-2)
	linked := make([]float64, 0, len(h.active)-2)
	for _, x := range h.active {
		if x == c.a || x == c.b {
			continue
		}
		da, ok := rowA[x]
		if !ok {
			return MergeStep{}, false, h.fail(precondition("merge", c.a, x, 0, ErrMissingDistance))
		}
		db, ok := rowB[x]
		if !ok {
			return MergeStep{}, false, h.fail(precondition("merge", c.b, x, 0, ErrMissingDistance))
		}
		others = append(others, x)
		linked = append(linked, min(da, db))
	}

	id := ElementID(len(h.nodes) + 1)
	left, right := h.nodes[c.a-1], h.nodes[c.b-1]
	h.nodes = append(h.nodes, Node{
		ID:       id,
		Kind:     Merge,
		Left:     c.a,
		Right:    c.b,
		Distance: c.d,
		Size:     left.Size + right.Size,
		Index:    -1,
	})

	h.active = slices.DeleteFunc(h.active, func(x ElementID) bool { return x == c.a || x == c.b })
	h.table.Remove(c.a)
	h.table.Remove(c.b)

	h.table.AddID(id)
	for i, x := range others {
		h.table.Set(id, x, linked[i])
	}
	h.active = append(h.active, id)
	h.finder.added(h, id)

	step := MergeStep{Node: id, Left: c.a, Right: c.b, Distance: c.d}
	h.merges = append(h.merges, step)
	h.logger.Debug("merge", "node", id, "left", c.a, "right", c.b, "distance", c.d, "active", len(h.active))
	return step, true, nil
}

// Run merges until one node remains and returns the finished dendrogram.
// With zero or one leaf no merge happens.
func (h *Hierarchy) Run() (*Dendrogram, error) {
	if h.err != nil {
		return nil, h.err
	}
	if !h.seeded {
		if len(h.active) > 1 {
			return nil, ErrNotSeeded
		}
		if err := h.Seed(nil); err != nil {
			return nil, err
		}
	}
	for {
		_, ok, err := h.Step()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
	}
	h.logger.Debug("clustering finished", "leaves", h.leaves, "merges", len(h.merges))
	return h.Dendrogram(), nil
}

// Dendrogram returns a snapshot of the tree built so far. Its root is set
// only once a single node is active.
func (h *Hierarchy) Dendrogram() *Dendrogram {
	d := &Dendrogram{
		nodes:  slices.Clone(h.nodes),
		merges: slices.Clone(h.merges),
		leaves: h.leaves,
	}
	if h.initial != nil {
		d.initial = h.initial.Clone()
	}
	if len(h.active) == 1 {
		d.root = h.active[0]
	}
	return d
}

// Active returns the ids of nodes not yet consumed by a merge, ascending.
func (h *Hierarchy) Active() []ElementID { return slices.Clone(h.active) }

// Node returns the node with the given id, active or retired.
func (h *Hierarchy) Node(id ElementID) (Node, bool) {
	if id < 1 || int(id) > len(h.nodes) {
		return Node{}, false
	}
	return h.nodes[id-1], true
}

// Distance returns the current distance between two active nodes.
func (h *Hierarchy) Distance(a, b ElementID) (float64, bool) {
	return h.table.Get(a, b)
}

// Distances returns a copy of id's row: one entry per other active node.
func (h *Hierarchy) Distances(id ElementID) map[ElementID]float64 {
	return h.table.Row(id)
}

// Merges returns the merges performed so far in order.
func (h *Hierarchy) Merges() []MergeStep { return slices.Clone(h.merges) }
