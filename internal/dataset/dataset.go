// Package dataset loads clustering inputs from TOML files and generates
// random ones.
//
// A file lists either points:
//
//	metric = "euclidean"
//
//	[[elements]]
//	name = "a"
//	point = [0.0, 1.0]
//
// or a precomputed distance matrix:
//
//	names = ["a", "b", "c"]
//	matrix = [
//	  [0.0, 2.0, 5.0],
//	  [2.0, 0.0, 4.0],
//	  [5.0, 4.0, 0.0],
//	]
package dataset

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/VladOS-0/hclust"
)

// File is a decoded dataset.
type File struct {
	Metric   string      `toml:"metric"`
	Elements []Element   `toml:"elements"`
	Names    []string    `toml:"names"`
	Matrix   [][]float64 `toml:"matrix"`
}

// Element is one point of a point dataset.
type Element struct {
	Name  string    `toml:"name"`
	Point []float64 `toml:"point"`
}

// Load reads and validates the dataset at path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	ds, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Decode reads and validates a dataset from r.
func Decode(r io.Reader) (*File, error) {
	var ds File
	md, err := toml.NewDecoder(r).Decode(&ds)
	if err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode dataset: unknown key %q", undecoded[0].String())
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// HasMatrix reports whether the dataset carries precomputed distances.
func (f *File) HasMatrix() bool { return f.Matrix != nil }

// Len returns the number of elements.
func (f *File) Len() int {
	if f.HasMatrix() {
		return len(f.Matrix)
	}
	return len(f.Elements)
}

// Validate checks that exactly one input form is used and that it is well formed.
// Distance values themselves are checked by the engine.
func (f *File) Validate() error {
	if f.HasMatrix() && len(f.Elements) > 0 {
		return fmt.Errorf("dataset: use either elements or matrix, not both")
	}
	if f.HasMatrix() {
		if f.Names != nil && len(f.Names) != len(f.Matrix) {
			return fmt.Errorf("dataset: %d names for a %d-row matrix", len(f.Names), len(f.Matrix))
		}
		return nil
	}
	if f.Names != nil {
		return fmt.Errorf("dataset: names only apply to a matrix; name elements individually")
	}
	if _, ok := hclust.MetricByName(f.Metric); !ok {
		return fmt.Errorf("dataset: unknown metric %q", f.Metric)
	}
	for i, e := range f.Elements {
		if len(e.Point) == 0 {
			return fmt.Errorf("dataset: element %d (%q) has no point", i, e.Name)
		}
		if len(e.Point) != len(f.Elements[0].Point) {
			return fmt.Errorf("dataset: element %d (%q) has %d dimensions, expected %d",
				i, e.Name, len(e.Point), len(f.Elements[0].Point))
		}
	}
	return nil
}

// Cluster runs the engine on the dataset. cfg.Metric is replaced by the
// dataset's metric for point datasets.
func (f *File) Cluster(cfg hclust.Config) (*hclust.Dendrogram, error) {
	if f.HasMatrix() {
		return hclust.ClusterMatrix(f.Names, f.Matrix, cfg)
	}
	metric, _ := hclust.MetricByName(f.Metric)
	cfg.Metric = metric

	names := make([]string, len(f.Elements))
	points := make([][]float64, len(f.Elements))
	for i, e := range f.Elements {
		names[i] = e.Name
		if names[i] == "" {
			names[i] = fmt.Sprint(i + 1)
		}
		points[i] = e.Point
	}
	return hclust.ClusterPoints(names, points, cfg)
}
