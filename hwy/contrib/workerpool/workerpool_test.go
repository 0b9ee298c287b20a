// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ajroetker/simdagg/hwy/contrib/reduce"
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
	var calls atomic.Int32

	pool.Each(n, func(i int) {
		results[i] = i * 2
		calls.Add(1)
	})

	if calls.Load() != int32(n) {
		t.Errorf("fn called %d times, want %d", calls.Load(), n)
	}
	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestEachZero(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	pool.Each(0, func(int) {
		t.Error("fn called for n = 0")
	})
}

func TestEachAfterClose(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	sum := 0
	pool.Each(10, func(i int) { sum += i })
	if sum != 45 {
		t.Errorf("sequential fallback sum = %d, want 45", sum)
	}
}

func TestCloseDuringEach(t *testing.T) {
	for range 50 {
		pool := New(4)
		var wg sync.WaitGroup
		var calls atomic.Int64
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				pool.Each(64, func(int) { calls.Add(1) })
			}()
		}
		pool.Close()
		wg.Wait()

		if got := calls.Load(); got != 8*64 {
			t.Fatalf("fn called %d times, want %d", got, 8*64)
		}
	}
}

func TestApplySums(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	columns := make([][]int64, 20)
	for i := range columns {
		columns[i] = make([]int64, i*7)
		for j := range columns[i] {
			columns[i][j] = int64(j)
		}
	}

	sums := Apply(pool, columns, reduce.Sum[int64])
	for i, got := range sums {
		n := int64(i * 7)
		if want := n * (n - 1) / 2; got != want {
			t.Errorf("column %d: sum = %d, want %d", i, got, want)
		}
	}
}

func BenchmarkApply(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	columns := make([][]float32, 64)
	for i := range columns {
		columns[i] = make([]float32, 4096)
	}
	b.ReportAllocs()
	for b.Loop() {
		Apply(pool, columns, reduce.Sum[float32])
	}
}
