package hclust

import "golang.org/x/sync/errgroup"

// parallelScanFinder splits the read-only scan across workers by row range
// and reduces the partial results with candidate.less, which yields the same
// pair as the sequential scan.
//
// Rows near the front of the active set have more neighbors, so ranges are
// uneven in work; this only matters for speed.
type parallelScanFinder struct {
	workers int
}

func (parallelScanFinder) seeded(*Hierarchy)           {}
func (parallelScanFinder) added(*Hierarchy, ElementID) {}

func (f parallelScanFinder) nearest(h *Hierarchy) (candidate, error) {
	n := len(h.active)
	if f.workers <= 1 || n < 2*f.workers {
		return scanFinder{}.nearest(h)
	}

	type partial struct {
		c     candidate
		found bool
	}
	results := make([]partial, f.workers)
	rowsPerWorker := (n + f.workers - 1) / f.workers

	// Each worker writes only its own slot in results.
	var g errgroup.Group
	for w := 0; w < f.workers; w++ {
		startRow := w * rowsPerWorker
		endRow := min(startRow+rowsPerWorker, n)
		if startRow >= n {
			break
		}
		g.Go(func() error {
			c, found, err := scanRows(h.table, h.active, startRow, endRow)
			if err != nil {
				return err
			}
			results[w] = partial{c: c, found: found}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return candidate{}, err
	}

	var best candidate
	found := false
	for _, r := range results {
		if r.found && (!found || r.c.less(best)) {
			best = r.c
			found = true
		}
	}
	return best, nil
}
