package dataset

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/VladOS-0/hclust"
)

// Defaults used when generating random inputs.
const (
	DefaultCount       = 5
	DefaultMinDistance = 0.5
	DefaultMaxDistance = 5.0
)

// Rect is an axis-aligned rectangle given by its bottom-left and top-right corners.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// DefaultBounds is the area random points are drawn from.
func DefaultBounds() Rect {
	return Rect{MinX: -100, MinY: -100, MaxX: 100, MaxY: 100}
}

// Validate rejects rectangles with negative width or height.
func (r Rect) Validate() error {
	if r.MaxX < r.MinX {
		return fmt.Errorf("dataset: rectangle has negative width %g", r.MaxX-r.MinX)
	}
	if r.MaxY < r.MinY {
		return fmt.Errorf("dataset: rectangle has negative height %g", r.MaxY-r.MinY)
	}
	return nil
}

// Center returns the middle of r.
func (r Rect) Center() []float64 {
	return []float64{(r.MinX + r.MaxX) / 2, (r.MinY + r.MaxY) / 2}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g; %g) - (%g; %g)", r.MinX, r.MinY, r.MaxX, r.MaxY)
}

// RandomPoints draws n points uniformly from r.
func RandomPoints(rng *rand.Rand, n int, r Rect) ([][]float64, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	points := make([][]float64, n)
	for i := range points {
		points[i] = []float64{
			r.MinX + rng.Float64()*(r.MaxX-r.MinX),
			r.MinY + rng.Float64()*(r.MaxY-r.MinY),
		}
	}
	return points, nil
}

// Quantized returns a uniform value in [lo, hi] rounded to the nearest integer.
// Rounding can leave [lo, hi] when the bounds are not integers.
func Quantized(rng *rand.Rand, lo, hi float64) float64 {
	return math.Round(rng.Float64()*(hi-lo) + lo)
}

// QuantizedDistances returns a pair function that draws a quantized random
// distance per unordered pair. Each pair is drawn once, so both directions
// read the same value.
func QuantizedDistances(rng *rand.Rand, lo, hi float64) (hclust.PairFunc, error) {
	if hi < lo {
		return nil, fmt.Errorf("dataset: max distance %g is below min distance %g", hi, lo)
	}
	if lo < 0 {
		return nil, fmt.Errorf("dataset: min distance %g is negative", lo)
	}
	return hclust.CachePairs(func(a, b hclust.ElementID) float64 {
		return Quantized(rng, lo, hi)
	}), nil
}

// Names returns "1".."n".
func Names(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprint(i + 1)
	}
	return names
}

// ClusterQuantized clusters n elements whose pairwise distances are drawn
// with QuantizedDistances.
func ClusterQuantized(rng *rand.Rand, n int, lo, hi float64, cfg hclust.Config) (*hclust.Dendrogram, error) {
	fn, err := QuantizedDistances(rng, lo, hi)
	if err != nil {
		return nil, err
	}
	h, err := hclust.NewHierarchy(cfg)
	if err != nil {
		return nil, err
	}
	for _, name := range Names(n) {
		if _, err := h.AddLeaf(name); err != nil {
			return nil, err
		}
	}
	if err := h.Seed(fn); err != nil {
		return nil, err
	}
	return h.Run()
}
