package msort

import (
	"math/rand/v2"
	"slices"
	"testing"
)

// Generate random data for benchmarks
func generateInts(n int) []int {
	rng := rand.New(rand.NewPCG(uint64(n), 42))
	data := make([]int, n)
	for i := range data {
		data[i] = rng.IntN(10000) - 5000
	}
	return data
}

func BenchmarkSort_100(b *testing.B) {
	benchmarkSort(b, 100, false)
}

func BenchmarkSort_1000(b *testing.B) {
	benchmarkSort(b, 1000, false)
}

func BenchmarkSort_10000(b *testing.B) {
	benchmarkSort(b, 10000, false)
}

func BenchmarkSortInstrumented_100(b *testing.B) {
	benchmarkSort(b, 100, true)
}

func BenchmarkSortInstrumented_1000(b *testing.B) {
	benchmarkSort(b, 1000, true)
}

func benchmarkSort(b *testing.B, n int, instrument bool) {
	data := generateInts(n)
	e := New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		e.Sort(data, instrument)
	}
}

func BenchmarkStdlibStable_1000(b *testing.B) {
	data := generateInts(1000)
	buf := make([]int, len(data))
	b.ResetTimer()
	for b.Loop() {
		copy(buf, data)
		slices.SortStableFunc(buf, func(x, y int) int { return x - y })
	}
}
