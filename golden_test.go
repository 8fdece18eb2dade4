package hclust

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

type goldenData struct {
	Dataset   string      `json:"dataset"`
	Metric    string      `json:"metric"`
	Names     []string    `json:"names"`
	Points    [][]float64 `json:"points"`
	Linkage   [][]float64 `json:"linkage"`
	Report    []string    `json:"report"`
	CutK      int         `json:"cut_k"`
	CutLabels []int       `json:"cut_labels"`
	LeafOrder []int       `json:"leaf_order"`
}

const goldenTolerance = 1e-10

func loadGolden(t *testing.T, path string) goldenData {
	t.Helper()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	var g goldenData
	if err := json.Unmarshal(raw, &g); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return g
}

func TestGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.json")
	if err != nil {
		t.Fatalf("failed to glob testdata: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no golden test files found in testdata/")
	}

	for _, path := range files {
		g := loadGolden(t, path)
		for _, s := range []Strategy{StrategyScan, StrategyParallelScan, StrategyHeap} {
			t.Run(g.Dataset+"/"+string(s), func(t *testing.T) {
				cfg := DefaultConfig()
				cfg.Strategy = s
				cfg.Workers = 2
				metric, ok := MetricByName(g.Metric)
				if !ok {
					t.Fatalf("unknown metric %q", g.Metric)
				}
				cfg.Metric = metric

				d, err := ClusterPoints(g.Names, g.Points, cfg)
				if err != nil {
					t.Fatal(err)
				}

				linkage := d.Linkage()
				if len(linkage) != len(g.Linkage) {
					t.Fatalf("linkage rows: golden=%d, got=%d", len(g.Linkage), len(linkage))
				}
				for i, row := range g.Linkage {
					for j := range 4 {
						if math.Abs(row[j]-linkage[i][j]) > goldenTolerance {
							t.Errorf("linkage[%d][%d]: golden=%v, got=%v", i, j, row[j], linkage[i][j])
						}
					}
				}

				report := strings.Split(strings.TrimSuffix(d.Report(), "\n"), "\n")
				if !slices.Equal(report, g.Report) {
					t.Errorf("report:\n%s\nwant:\n%s", strings.Join(report, "\n"), strings.Join(g.Report, "\n"))
				}

				labels, err := d.CutK(g.CutK)
				if err != nil {
					t.Fatal(err)
				}
				if !slices.Equal(labels, g.CutLabels) {
					t.Errorf("CutK(%d) = %v, golden %v", g.CutK, labels, g.CutLabels)
				}

				order := d.LeafOrder()
				got := make([]int, len(order))
				for i, id := range order {
					got[i] = int(id)
				}
				if !slices.Equal(got, g.LeafOrder) {
					t.Errorf("LeafOrder() = %v, golden %v", got, g.LeafOrder)
				}
			})
		}
	}
}
