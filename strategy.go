package hclust

// Strategy selects how the merge loop finds the closest active pair.
type Strategy string

const (
	StrategyAuto         Strategy = "auto"
	StrategyScan         Strategy = "scan"
	StrategyParallelScan Strategy = "parallel_scan"
	StrategyHeap         Strategy = "heap"
)

// selectStrategy resolves StrategyAuto into a concrete strategy for n leaves.
// A full rescan does O(n²) work per merge; the heap pays O(n² log n) once and
// wins as n grows.
func selectStrategy(cfg Config, n int) Strategy {
	if cfg.Strategy != StrategyAuto {
		return cfg.Strategy
	}
	if n >= cfg.HeapThreshold {
		return StrategyHeap
	}
	return StrategyScan
}

// pairFinder locates the closest active pair. Implementations must order
// candidates by (distance, lower id, higher id).
type pairFinder interface {
	// seeded is called once after the initial table is in place.
	seeded(h *Hierarchy)
	// added is called after id joined the active set with its row filled.
	added(h *Hierarchy, id ElementID)
	nearest(h *Hierarchy) (candidate, error)
}

func newPairFinder(s Strategy, workers int) pairFinder {
	switch s {
	case StrategyHeap:
		return &heapFinder{}
	case StrategyParallelScan:
		return parallelScanFinder{workers: workers}
	default:
		return scanFinder{}
	}
}

// candidate is a pair of active ids with a < b.
type candidate struct {
	a, b ElementID
	d    float64
}

// less orders candidates by (distance, a, b).
func (c candidate) less(o candidate) bool {
	if c.d != o.d {
		return c.d < o.d
	}
	if c.a != o.a {
		return c.a < o.a
	}
	return c.b < o.b
}
