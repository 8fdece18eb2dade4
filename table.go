package hclust

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// DistanceTable is a symmetric mapping between active node ids.
// Set always writes both directions; the diagonal is implicit and never stored.
type DistanceTable struct {
	rows map[ElementID]map[ElementID]float64
}

// NewDistanceTable returns an empty table.
func NewDistanceTable() *DistanceTable {
	return &DistanceTable{rows: make(map[ElementID]map[ElementID]float64)}
}

// TableFromMatrix builds a table from a square matrix whose row i belongs to ids[i].
// The matrix must have a zero diagonal and be symmetric with finite,
// non-negative values.
func TableFromMatrix(ids []ElementID, m [][]float64) (*DistanceTable, error) {
	if len(m) != len(ids) {
		return nil, precondition("table", 0, 0, float64(len(m)), ErrMissingDistance)
	}
	t := NewDistanceTable()
	for _, id := range ids {
		t.AddID(id)
	}
	for i := range m {
		if len(m[i]) != len(ids) {
			return nil, precondition("table", ids[i], 0, float64(len(m[i])), ErrMissingDistance)
		}
		if m[i][i] != 0 {
			return nil, precondition("table", ids[i], ids[i], m[i][i], ErrDiagonal)
		}
		for j := i + 1; j < len(m); j++ {
			if len(m[j]) != len(ids) {
				return nil, precondition("table", ids[j], 0, float64(len(m[j])), ErrMissingDistance)
			}
			d := m[i][j]
			if err := checkDistance("table", ids[i], ids[j], d); err != nil {
				return nil, err
			}
			if m[j][i] != d {
				return nil, precondition("table", ids[j], ids[i], m[j][i], ErrAsymmetric)
			}
			t.Set(ids[i], ids[j], d)
		}
	}
	return t, nil
}

// checkDistance rejects values that cannot be used as a distance.
func checkDistance(op string, a, b ElementID, d float64) error {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return precondition(op, a, b, d, ErrNonFiniteDistance)
	}
	if d < 0 {
		return precondition(op, a, b, d, ErrNegativeDistance)
	}
	return nil
}

// AddID registers id with an empty row. It is a no-op for known ids.
func (t *DistanceTable) AddID(id ElementID) {
	if _, ok := t.rows[id]; !ok {
		t.rows[id] = make(map[ElementID]float64)
	}
}

// Set stores d for the unordered pair (a, b).
func (t *DistanceTable) Set(a, b ElementID, d float64) {
	t.AddID(a)
	t.AddID(b)
	t.rows[a][b] = d
	t.rows[b][a] = d
}

// Get returns the distance stored for (a, b).
func (t *DistanceTable) Get(a, b ElementID) (float64, bool) {
	row, ok := t.rows[a]
	if !ok {
		return 0, false
	}
	d, ok := row[b]
	return d, ok
}

// Has reports whether id has a row.
func (t *DistanceTable) Has(id ElementID) bool {
	_, ok := t.rows[id]
	return ok
}

// Row returns a copy of the distances from id to every other node.
func (t *DistanceTable) Row(id ElementID) map[ElementID]float64 {
	row, ok := t.rows[id]
	if !ok {
		return nil
	}
	out := make(map[ElementID]float64, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}

// Remove deletes id's row and every entry pointing at id.
func (t *DistanceTable) Remove(id ElementID) {
	for other := range t.rows[id] {
		if row, ok := t.rows[other]; ok {
			delete(row, id)
		}
	}
	delete(t.rows, id)
}

// Len returns the number of ids in the table.
func (t *DistanceTable) Len() int { return len(t.rows) }

// IDs returns every id in ascending order.
func (t *DistanceTable) IDs() []ElementID {
	ids := make([]ElementID, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Clone returns a deep copy of t.
func (t *DistanceTable) Clone() *DistanceTable {
	c := &DistanceTable{rows: make(map[ElementID]map[ElementID]float64, len(t.rows))}
	for id := range t.rows {
		c.rows[id] = t.Row(id)
	}
	return c
}

// Validate checks that every pair of ids has the same finite, non-negative
// value in both directions and that no row refers to an unknown id.
func (t *DistanceTable) Validate() error {
	ids := t.IDs()
	for i, a := range ids {
		row := t.rows[a]
		if _, ok := row[a]; ok {
			return precondition("validate", a, a, row[a], ErrDiagonal)
		}
		for other := range row {
			if !t.Has(other) {
				return precondition("validate", a, other, row[other], ErrUnknownElement)
			}
		}
		for _, b := range ids[i+1:] {
			ab, ok := row[b]
			if !ok {
				return precondition("validate", a, b, 0, ErrMissingDistance)
			}
			ba, ok := t.rows[b][a]
			if !ok {
				return precondition("validate", b, a, 0, ErrMissingDistance)
			}
			if ab != ba {
				return precondition("validate", b, a, ba, ErrAsymmetric)
			}
			if err := checkDistance("validate", a, b, ab); err != nil {
				return err
			}
		}
	}
	return nil
}

// Matrix returns the table as a symmetric matrix ordered by IDs.
// Missing entries read as zero; call Validate first when that matters.
func (t *DistanceTable) Matrix() *mat.SymDense {
	ids := t.IDs()
	n := len(ids)
	if n == 0 {
		return nil
	}
	m := mat.NewSymDense(n, nil)
	for i, a := range ids {
		for j := i + 1; j < n; j++ {
			if d, ok := t.rows[a][ids[j]]; ok {
				m.SetSym(i, j, d)
			}
		}
	}
	return m
}
