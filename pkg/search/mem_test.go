//go:build test

package search

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"runtime/pprof"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/bastiangx/wordfind/pkg/index"
)

var memQueries = [][]string{
	{"a", "ab", "abc", "abcd"},
	{"e", "er", "ere"},
	{"q", "qu", "qui", "quir"},
	{"t", "th", "the", "ther", "there"},
	{"i", "in", "ing"},
}

func memEngine(t *testing.T) *Engine {
	t.Helper()
	r := rand.New(rand.NewSource(1))
	letters := "abcdeghiqrstu"
	words := make([]string, 5000)
	for i := range words {
		b := make([]byte, 3+r.Intn(8))
		for j := range b {
			b[j] = letters[r.Intn(len(letters))]
		}
		words[i] = string(b)
	}
	return New(index.Build(words), WithCache(64))
}

func heapAlloc() uint64 {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func TestMemoryRetainedBySearch(t *testing.T) {
	for _, iterations := range []int{100, 1000} {
		t.Run(fmt.Sprintf("iterations_%d", iterations), func(t *testing.T) {
			engine := memEngine(t)
			baseline := heapAlloc()
			baselineGoroutines := runtime.NumGoroutine()

			ops := 0
			for i := 0; i < iterations; i++ {
				for _, pattern := range memQueries {
					for _, q := range pattern {
						_, _ = engine.SearchLimit(q, 10)
						ops++
					}
				}
			}

			memDelta := int64(heapAlloc()) - int64(baseline)
			goroutineDelta := runtime.NumGoroutine() - baselineGoroutines
			t.Logf("iterations=%d ops=%d mem_delta=%d bytes goroutine_delta=%d",
				iterations, ops, memDelta, goroutineDelta)

			// the cache is bounded, so retained memory must not grow with ops
			if memDelta > 4*1024*1024 {
				t.Errorf("excessive retained memory: %d bytes", memDelta)
			}
			if goroutineDelta > 2 {
				t.Errorf("goroutine leak detected: %d goroutines leaked", goroutineDelta)
			}
		})
	}
}

func TestMemoryConcurrent(t *testing.T) {
	memFile, err := os.Create("concurrent_memory.prof")
	if err != nil {
		t.Fatalf("profile file creation failed: %v", err)
	}
	defer func() {
		memFile.Close()
		os.Remove("concurrent_memory.prof")
	}()

	engine := memEngine(t)
	baseline := heapAlloc()
	baselineGoroutines := runtime.NumGoroutine()

	var wg sync.WaitGroup
	var ops atomic.Int64
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for iter := 0; iter < 200; iter++ {
				for _, pattern := range memQueries {
					for _, q := range pattern {
						_, _ = engine.Matches(q, 10)
						ops.Add(1)
					}
				}
			}
		}()
	}
	wg.Wait()

	memDelta := int64(heapAlloc()) - int64(baseline)
	goroutineDelta := runtime.NumGoroutine() - baselineGoroutines
	t.Logf("total_ops=%d mem_delta=%d bytes goroutine_delta=%d", ops.Load(), memDelta, goroutineDelta)

	if err := pprof.WriteHeapProfile(memFile); err != nil {
		t.Errorf("heap profile write failed: %v", err)
	}
	if memDelta > 4*1024*1024 {
		t.Errorf("excessive retained memory: %d bytes", memDelta)
	}
	if goroutineDelta > 3 {
		t.Errorf("goroutine leak detected: %d goroutines leaked", goroutineDelta)
	}
}
