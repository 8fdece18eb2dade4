package dataset

import (
	"math"
	"math/rand"
	"testing"

	"github.com/VladOS-0/hclust"
)

func TestRect_Validate(t *testing.T) {
	if err := DefaultBounds().Validate(); err != nil {
		t.Errorf("default bounds invalid: %v", err)
	}
	if err := (Rect{MinX: 1, MaxX: 0}).Validate(); err == nil {
		t.Error("expected negative width error")
	}
	if err := (Rect{MinY: 1, MaxY: 0}).Validate(); err == nil {
		t.Error("expected negative height error")
	}
}

func TestRect_Center(t *testing.T) {
	c := Rect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 50}.Center()
	if c[0] != 50 || c[1] != 25 {
		t.Errorf("Center() = %v, want [50 25]", c)
	}
}

func TestRandomPoints_InsideBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	r := DefaultBounds()
	points, err := RandomPoints(rng, 100, r)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 100 {
		t.Fatalf("got %d points, want 100", len(points))
	}
	for i, p := range points {
		if p[0] < r.MinX || p[0] > r.MaxX || p[1] < r.MinY || p[1] > r.MaxY {
			t.Errorf("point %d = %v outside %v", i, p, r)
		}
	}
	if _, err := RandomPoints(rng, 1, Rect{MinX: 1}); err == nil {
		t.Error("expected error for an invalid rectangle")
	}
}

func TestQuantized_IsWholeAndInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		v := Quantized(rng, DefaultMinDistance, DefaultMaxDistance)
		if v != math.Trunc(v) {
			t.Fatalf("value %v is not whole", v)
		}
		if v < 1 || v > 5 {
			t.Fatalf("value %v outside [1, 5]", v)
		}
	}
}

func TestQuantizedDistances_Symmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	fn, err := QuantizedDistances(rng, 0, 10)
	if err != nil {
		t.Fatal(err)
	}
	for a := hclust.ElementID(1); a <= 6; a++ {
		for b := a + 1; b <= 6; b++ {
			if fn(b, a) != fn(a, b) {
				t.Errorf("d(%d,%d) != d(%d,%d)", b, a, a, b)
			}
		}
	}
}

func TestQuantizedDistances_BadRange(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	if _, err := QuantizedDistances(rng, 5, 1); err == nil {
		t.Error("expected error for max < min")
	}
	if _, err := QuantizedDistances(rng, -1, 1); err == nil {
		t.Error("expected error for negative min")
	}
}

func TestClusterQuantized(t *testing.T) {
	run := func() *hclust.Dendrogram {
		d, err := ClusterQuantized(rand.New(rand.NewSource(11)), 8, DefaultMinDistance, DefaultMaxDistance, hclust.DefaultConfig())
		if err != nil {
			t.Fatal(err)
		}
		return d
	}
	a, b := run(), run()
	if len(a.Merges()) != 7 {
		t.Fatalf("merges = %d, want 7", len(a.Merges()))
	}
	if a.Report() != b.Report() {
		t.Error("same seed produced different trees")
	}
	if a.MatrixString() != b.MatrixString() {
		t.Error("same seed produced different distance tables")
	}
}

func TestNames(t *testing.T) {
	got := Names(3)
	if len(got) != 3 || got[0] != "1" || got[2] != "3" {
		t.Errorf("Names(3) = %v", got)
	}
}
