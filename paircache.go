package hclust

// PairFunc returns the distance between two leaves.
type PairFunc func(a, b ElementID) float64

type pairKey struct{ a, b ElementID }

// PairCache evaluates a PairFunc at most once per unordered pair.
// A value is stored under the order in which it was first computed and is
// found again with either order, so d(a, b) and d(b, a) always agree even when
// fn is stochastic.
type PairCache struct {
	fn     PairFunc
	values map[pairKey]float64
	calls  int
}

// NewPairCache wraps fn.
func NewPairCache(fn PairFunc) *PairCache {
	return &PairCache{fn: fn, values: make(map[pairKey]float64)}
}

// Distance returns the cached value for (a, b), computing it on first use.
func (c *PairCache) Distance(a, b ElementID) float64 {
	if d, ok := c.Lookup(a, b); ok {
		return d
	}
	d := c.fn(a, b)
	c.calls++
	c.values[pairKey{a, b}] = d
	return d
}

// Lookup returns a cached value without calling the wrapped function.
func (c *PairCache) Lookup(a, b ElementID) (float64, bool) {
	if d, ok := c.values[pairKey{a, b}]; ok {
		return d, true
	}
	d, ok := c.values[pairKey{b, a}]
	return d, ok
}

// Calls reports how many times the wrapped function was evaluated.
func (c *PairCache) Calls() int { return c.calls }

// Len reports the number of cached pairs.
func (c *PairCache) Len() int { return len(c.values) }

// CachePairs returns a PairFunc that evaluates fn once per unordered pair.
// The result is not safe for concurrent use.
func CachePairs(fn PairFunc) PairFunc {
	return NewPairCache(fn).Distance
}
