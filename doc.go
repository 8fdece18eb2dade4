// Package hclust implements agglomerative hierarchical clustering with
// single linkage.
//
// Elements start as leaves of a binary merge tree. The engine keeps a
// symmetric distance table over the currently active nodes, repeatedly merges
// the globally closest pair into a new node and gives that node the minimum of
// its children's distances to every other active node. After N-1 merges a
// single root remains.
//
// Basic usage:
//
//	names := []string{"a", "b", "c"}
//	dist := func(i, j int) float64 { return table[i][j] }
//	d, err := hclust.Cluster(names, dist, hclust.DefaultConfig())
//	root, ok := d.Root()
//	fmt.Print(d.Report())
//
// For points with a built-in metric:
//
//	d, err := hclust.ClusterPoints(names, points, cfg)
//
// # Identifiers
//
// Leaves are numbered 1..N in input order. Every merge allocates the next
// unused id, so merge-node ids N+1, N+2, ... encode the merge order.
//
// # Ties
//
// When several pairs share the minimum distance, the pair with the smallest
// (lower id, higher id) wins. Every [Strategy] resolves ties the same way, so
// results are reproducible for the same input.
package hclust
