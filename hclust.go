package hclust

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"

	"github.com/charmbracelet/log"
)

// Config controls how the merge loop finds the closest pair.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Strategy selects how the closest active pair is found each iteration.
	// Every strategy produces the same tree. Default: "auto".
	Strategy Strategy

	// Workers controls the number of goroutines used by StrategyParallelScan.
	// 0 means use runtime.NumCPU(). Default: 0 (auto).
	Workers int

	// HeapThreshold is the leaf count from which StrategyAuto switches from
	// a full rescan to the candidate heap. Must be >= 2. Default: 64.
	HeapThreshold int

	// Metric is used by ClusterPoints. Default: EuclideanMetric.
	Metric DistanceMetric

	// Logger receives one debug record per merge. Default: log.Default().
	Logger *log.Logger
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Strategy:      StrategyAuto,
		HeapThreshold: 64,
		Metric:        EuclideanMetric{},
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	switch cfg.Strategy {
	case StrategyAuto, StrategyScan, StrategyParallelScan, StrategyHeap:
		// valid
	default:
		return fmt.Errorf("hclust: invalid Strategy %q", cfg.Strategy)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("hclust: Workers must be >= 0 (0 means runtime.NumCPU()), got %d", cfg.Workers)
	}
	if cfg.HeapThreshold < 2 {
		return fmt.Errorf("hclust: HeapThreshold must be >= 2, got %d", cfg.HeapThreshold)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Strategy == "" {
		cfg.Strategy = StrategyAuto
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.HeapThreshold == 0 {
		cfg.HeapThreshold = 64
	}
	if cfg.Metric == nil {
		cfg.Metric = EuclideanMetric{}
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
}

// leafNames returns names, or "1".."n" when names is nil.
func leafNames(names []string, n int) ([]string, error) {
	if names == nil {
		names = make([]string, n)
		for i := range names {
			names[i] = strconv.Itoa(i + 1)
		}
		return names, nil
	}
	if len(names) != n {
		return nil, fmt.Errorf("hclust: got %d names for %d elements", len(names), n)
	}
	return names, nil
}

func newWithLeaves(names []string, cfg Config) (*Hierarchy, error) {
	h, err := NewHierarchy(cfg)
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		if _, err := h.AddLeaf(name); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// Cluster clusters len(names) elements. dist receives 0-based indexes into
// names and is evaluated exactly once per unordered pair.
func Cluster(names []string, dist func(i, j int) float64, cfg Config) (*Dendrogram, error) {
	if dist == nil && len(names) > 1 {
		return nil, errors.New("hclust: nil distance function")
	}
	h, err := newWithLeaves(names, cfg)
	if err != nil {
		return nil, err
	}
	if err := h.Seed(func(a, b ElementID) float64 {
		return dist(int(a)-1, int(b)-1)
	}); err != nil {
		return nil, err
	}
	return h.Run()
}

// ClusterPoints clusters points with cfg.Metric. All points must have the same
// dimensionality. A nil names slice labels leaves by their ids.
func ClusterPoints(names []string, points [][]float64, cfg Config) (*Dendrogram, error) {
	names, err := leafNames(names, len(points))
	if err != nil {
		return nil, err
	}
	if len(points) > 0 {
		dims := len(points[0])
		for i, p := range points {
			if len(p) != dims {
				return nil, fmt.Errorf("hclust: point %d has %d dimensions, expected %d", i, len(p), dims)
			}
		}
	}
	metric := cfg.Metric
	if metric == nil {
		metric = EuclideanMetric{}
	}
	h, err := newWithLeaves(names, cfg)
	if err != nil {
		return nil, err
	}
	if err := h.Seed(PointDistances(points, metric)); err != nil {
		return nil, err
	}
	return h.Run()
}

// ClusterMatrix clusters elements from a precomputed square distance matrix.
// Row i of m belongs to names[i]; a nil names slice labels leaves by their ids.
func ClusterMatrix(names []string, m [][]float64, cfg Config) (*Dendrogram, error) {
	names, err := leafNames(names, len(m))
	if err != nil {
		return nil, err
	}
	h, err := newWithLeaves(names, cfg)
	if err != nil {
		return nil, err
	}
	t, err := TableFromMatrix(h.Active(), m)
	if err != nil {
		return nil, err
	}
	if err := h.SeedTable(t); err != nil {
		return nil, err
	}
	return h.Run()
}
