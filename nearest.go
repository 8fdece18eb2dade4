package hclust

// pairDistance reads (a, b) from both rows and fails on a missing or
// mismatched entry.
func pairDistance(t *DistanceTable, a, b ElementID) (float64, error) {
	ab, ok := t.Get(a, b)
	if !ok {
		return 0, precondition("nearest", a, b, 0, ErrMissingDistance)
	}
	ba, ok := t.Get(b, a)
	if !ok {
		return 0, precondition("nearest", b, a, 0, ErrMissingDistance)
	}
	if ab != ba {
		return 0, precondition("nearest", b, a, ba, ErrAsymmetric)
	}
	return ab, nil
}

// scanRows returns the closest pair whose lower id is active[lo:hi].
// Rows and neighbors are visited in ascending id order and only a strictly
// smaller distance replaces the current best, so the first minimum wins.
func scanRows(t *DistanceTable, active []ElementID, lo, hi int) (candidate, bool, error) {
	var best candidate
	found := false
	for i := lo; i < hi; i++ {
		a := active[i]
		for _, b := range active[i+1:] {
			d, err := pairDistance(t, a, b)
			if err != nil {
				return candidate{}, false, err
			}
			if !found || d < best.d {
				best = candidate{a: a, b: b, d: d}
				found = true
			}
		}
	}
	return best, found, nil
}

// scanFinder rescans every active pair on each call.
type scanFinder struct{}

func (scanFinder) seeded(*Hierarchy)           {}
func (scanFinder) added(*Hierarchy, ElementID) {}

func (scanFinder) nearest(h *Hierarchy) (candidate, error) {
	c, _, err := scanRows(h.table, h.active, 0, len(h.active))
	return c, err
}
