package hclust

import (
	"slices"
	"testing"
)

func twoPairsMatrix() [][]float64 {
	return [][]float64{
		{0, 1, 3, 4},
		{1, 0, 2, 5},
		{3, 2, 0, 1},
		{4, 5, 1, 0},
	}
}

func TestCutK(t *testing.T) {
	d, err := ClusterMatrix(nil, twoPairsMatrix(), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		k    int
		want []int
	}{
		{1, []int{0, 0, 0, 0}},
		{2, []int{0, 0, 1, 1}},
		{3, []int{0, 0, 1, 2}},
		{4, []int{0, 1, 2, 3}},
	}
	for _, tt := range tests {
		got, err := d.CutK(tt.k)
		if err != nil {
			t.Fatalf("CutK(%d): %v", tt.k, err)
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("CutK(%d) = %v, want %v", tt.k, got, tt.want)
		}
	}
}

func TestCutK_OutOfRange(t *testing.T) {
	d, err := ClusterMatrix(nil, twoPairsMatrix(), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []int{0, 5, -1} {
		if _, err := d.CutK(k); err == nil {
			t.Errorf("CutK(%d) should fail", k)
		}
	}
}

func TestCutK_Empty(t *testing.T) {
	d, err := ClusterMatrix(nil, nil, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	got, err := d.CutK(3)
	if err != nil || len(got) != 0 {
		t.Errorf("CutK on empty dendrogram = (%v, %v)", got, err)
	}
}

func TestCutDistance(t *testing.T) {
	d, err := ClusterMatrix(nil, twoPairsMatrix(), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		threshold float64
		want      []int
	}{
		{0.5, []int{0, 1, 2, 3}},
		{1, []int{0, 0, 1, 1}},
		{1.5, []int{0, 0, 1, 1}},
		{2, []int{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		if got := d.CutDistance(tt.threshold); !slices.Equal(got, tt.want) {
			t.Errorf("CutDistance(%v) = %v, want %v", tt.threshold, got, tt.want)
		}
	}
}

func TestCutK_LabelsFollowFirstLeaf(t *testing.T) {
	// Leaf 1 is far from everything; leaves 2 and 3 merge first.
	m := [][]float64{
		{0, 9, 9},
		{9, 0, 1},
		{9, 1, 0},
	}
	d, err := ClusterMatrix(nil, m, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	got, _ := d.CutK(2)
	if want := []int{0, 1, 1}; !slices.Equal(got, want) {
		t.Errorf("CutK(2) = %v, want %v", got, want)
	}
}
