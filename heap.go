package hclust

import "container/heap"

// candidateHeap is a min-heap ordered by candidate.less.
type candidateHeap []candidate

func (q candidateHeap) Len() int           { return len(q) }
func (q candidateHeap) Less(i, j int) bool { return q[i].less(q[j]) }
func (q candidateHeap) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *candidateHeap) Push(x any)        { *q = append(*q, x.(candidate)) }
func (q *candidateHeap) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}

// heapFinder keeps every pair ever created in a heap and drops entries that
// refer to a retired node when they reach the top. Distances between two
// active nodes never change, so retirement is the only way an entry goes stale.
type heapFinder struct {
	q candidateHeap
}

func (f *heapFinder) seeded(h *Hierarchy) {
	n := len(h.active)
	f.q = make(candidateHeap, 0, n*(n-1)/2)
	for i, a := range h.active {
		for _, b := range h.active[i+1:] {
			if d, ok := h.table.Get(a, b); ok {
				f.q = append(f.q, candidate{a: a, b: b, d: d})
			}
		}
	}
	heap.Init(&f.q)
}

func (f *heapFinder) added(h *Hierarchy, id ElementID) {
	for _, x := range h.active {
		if x == id {
			continue
		}
		if d, ok := h.table.Get(x, id); ok {
			heap.Push(&f.q, candidate{a: min(x, id), b: max(x, id), d: d})
		}
	}
}

func (f *heapFinder) nearest(h *Hierarchy) (candidate, error) {
	for f.q.Len() > 0 {
		c := heap.Pop(&f.q).(candidate)
		if h.table.Has(c.a) && h.table.Has(c.b) {
			return c, nil
		}
	}
	// Every active pair was pushed, so an empty heap means the table lost one.
	a, b := h.active[0], h.active[1]
	return candidate{}, precondition("nearest", a, b, 0, ErrMissingDistance)
}
