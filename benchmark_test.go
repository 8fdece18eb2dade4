package hclust

import (
	"math/rand"
	"testing"
)

func generateBenchData(n, dims int) [][]float64 {
	rng := rand.New(rand.NewSource(42))
	data := make([][]float64, n)
	for i := range data {
		data[i] = make([]float64, dims)
		for j := range data[i] {
			data[i][j] = rng.Float64() * 100
		}
	}
	return data
}

func benchStrategy(b *testing.B, s Strategy, n int) {
	b.Helper()
	data := generateBenchData(n, 2)
	cfg := DefaultConfig()
	cfg.Strategy = s
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ClusterPoints(nil, data, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

// --- Full rescan ---

func BenchmarkScan_50(b *testing.B)  { benchStrategy(b, StrategyScan, 50) }
func BenchmarkScan_200(b *testing.B) { benchStrategy(b, StrategyScan, 200) }

// --- Parallel rescan ---

func BenchmarkParallelScan_50(b *testing.B)  { benchStrategy(b, StrategyParallelScan, 50) }
func BenchmarkParallelScan_200(b *testing.B) { benchStrategy(b, StrategyParallelScan, 200) }

// --- Candidate heap ---

func BenchmarkHeap_50(b *testing.B)  { benchStrategy(b, StrategyHeap, 50) }
func BenchmarkHeap_200(b *testing.B) { benchStrategy(b, StrategyHeap, 200) }
