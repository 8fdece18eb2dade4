package hclust

import "testing"

func TestEdgeCase_NoElements(t *testing.T) {
	d, err := Cluster(nil, nil, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := d.Root(); ok {
		t.Error("expected no root for zero elements")
	}
	if d.Report() != "" {
		t.Errorf("expected empty report, got %q", d.Report())
	}
	if d.MatrixString() != "" {
		t.Errorf("expected empty matrix, got %q", d.MatrixString())
	}
	if len(d.Merges()) != 0 || d.Linkage() != nil || d.LeafOrder() != nil {
		t.Error("expected no merges")
	}
}

func TestEdgeCase_SingleElement(t *testing.T) {
	d, err := ClusterPoints([]string{"only"}, [][]float64{{1.0, 2.0}}, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root, ok := d.Root()
	if !ok {
		t.Fatal("expected the single leaf as root")
	}
	if !root.IsLeaf() || root.ID != 1 || root.Name != "only" {
		t.Errorf("root = %+v", root)
	}
	if _, _, ok := d.Children(root.ID); ok {
		t.Error("a leaf root has no children")
	}
	if d.Report() != "" {
		t.Errorf("expected empty report, got %q", d.Report())
	}
	if len(d.Merges()) != 0 {
		t.Errorf("expected 0 merges, got %d", len(d.Merges()))
	}
	if order := d.LeafOrder(); len(order) != 1 || order[0] != 1 {
		t.Errorf("LeafOrder() = %v", order)
	}
}

func TestEdgeCase_SingleElementWithoutSeed(t *testing.T) {
	h, err := NewHierarchy(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	h.AddLeaf("solo")
	d, err := h.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if root, ok := d.Root(); !ok || root.ID != 1 {
		t.Errorf("root = %+v, %v", root, ok)
	}
}

func TestEdgeCase_TwoElements(t *testing.T) {
	d, err := ClusterPoints(nil, [][]float64{{0, 0}, {1, 0}}, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root, ok := d.Root()
	if !ok || root.ID != 3 || root.Size != 2 || root.Distance != 1 {
		t.Errorf("root = %+v", root)
	}
}

func TestEdgeCase_AllIdenticalPoints(t *testing.T) {
	points := make([][]float64, 10)
	for i := range points {
		points[i] = []float64{5.0, 5.0}
	}
	d, err := ClusterPoints(nil, points, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(d.Merges()); got != 9 {
		t.Fatalf("expected 9 merges, got %d", got)
	}
	for _, m := range d.Merges() {
		if m.Distance != 0 {
			t.Errorf("merge %+v: expected distance 0", m)
		}
	}
}

func TestEdgeCase_DendrogramSnapshotBeforeFinish(t *testing.T) {
	h := newSeeded(t, DefaultConfig(), threeLeafMatrix())
	h.Step()
	d := h.Dendrogram()
	if _, ok := d.Root(); ok {
		t.Error("an unfinished dendrogram has no root")
	}
	if _, err := d.CutK(1); err == nil {
		t.Error("CutK on an unfinished dendrogram should fail")
	}
}
