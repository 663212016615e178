// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/ajroetker/go-mergetrace/msort"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestEach(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)
	if err := pool.Each(context.Background(), n, func(i int) {
		results[i] = i * 2
	}); err != nil {
		t.Fatalf("Each() error = %v", err)
	}

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestEachVisitsEveryIndexOnce(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	n := 1000
	counts := make([]atomic.Int32, n)
	if err := pool.Each(context.Background(), n, func(i int) {
		counts[i].Add(1)
	}); err != nil {
		t.Fatal(err)
	}
	for i := range counts {
		if c := counts[i].Load(); c != 1 {
			t.Errorf("index %d visited %d times", i, c)
		}
	}
}

func TestEachOneEnginePerJob(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	inputs := make([][]int, 32)
	for i := range inputs {
		inputs[i] = []int{i + 3, i + 1, i + 2}
	}
	comparisons := make([]int, len(inputs))
	if err := pool.Each(context.Background(), len(inputs), func(i int) {
		e := msort.New[int]()
		e.Sort(inputs[i], true)
		comparisons[i] = e.Statistics().Comparisons
	}); err != nil {
		t.Fatal(err)
	}
	for i, c := range comparisons {
		if c != 3 {
			t.Errorf("job %d: comparisons = %d, want 3", i, c)
		}
	}
}

func TestEachZero(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	called := false
	if err := pool.Each(context.Background(), 0, func(int) { called = true }); err != nil {
		t.Fatal(err)
	}
	if called {
		t.Errorf("fn called for n = 0")
	}
}

func TestEachCancelled(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	var ran atomic.Int32
	err := pool.Each(ctx, 10000, func(i int) {
		if ran.Add(1) == 10 {
			cancel()
		}
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Each() error = %v, want context.Canceled", err)
	}
	if got := ran.Load(); got >= 10000 {
		t.Errorf("ran %d jobs after cancellation", got)
	}
}

func TestEachAfterClose(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	sum := 0
	if err := pool.Each(context.Background(), 10, func(i int) { sum += i }); err != nil {
		t.Fatal(err)
	}
	if sum != 45 {
		t.Errorf("sum = %d, want 45", sum)
	}
}
