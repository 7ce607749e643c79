package queue

import (
	"testing"
)

// ===========================================================================
// Benchmark Configuration
// ===========================================================================

// queueBenchConfig holds benchmark test configuration.
type queueBenchConfig struct {
	name     string
	capacity int
}

var benchConfigs = []queueBenchConfig{
	{"Small/Cap64", 64},
	{"Default/Cap100", DefaultCapacity},
	{"Large/Cap64K", 64 * 1024},
}

// ===========================================================================
// Queue Factory Registry
// ===========================================================================

// queueFactory creates a Queue[int] with the given capacity.
type queueFactory func(capacity int) Queue[int]

var queueImplementations = map[string]queueFactory{
	"Ring": func(capacity int) Queue[int] { return MustNew[int](WithCapacity(capacity)) },
}

// ===========================================================================
// Benchmarks
// ===========================================================================

// BenchmarkEnqueue measures Enqueue performance, draining whenever the queue fills.
func BenchmarkEnqueue(b *testing.B) {
	for implName, factory := range queueImplementations {
		for _, cfg := range benchConfigs {
			b.Run(implName+"/"+cfg.name, func(b *testing.B) {
				q := factory(cfg.capacity)
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if err := q.Enqueue(i); err != nil {
						b.StopTimer()
						for !q.Empty() {
							_ = q.Dequeue()
						}
						b.StartTimer()
						_ = q.Enqueue(i)
					}
				}
			})
		}
	}
}

// BenchmarkEnqueueDequeue measures a steady-state enqueue/dequeue pair at half occupancy.
func BenchmarkEnqueueDequeue(b *testing.B) {
	for implName, factory := range queueImplementations {
		for _, cfg := range benchConfigs {
			b.Run(implName+"/"+cfg.name, func(b *testing.B) {
				q := factory(cfg.capacity)
				for i := 0; i < cfg.capacity/2; i++ {
					_ = q.Enqueue(i)
				}
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_ = q.Enqueue(i)
					_ = q.Dequeue()
				}
			})
		}
	}
}

// BenchmarkClone measures copying a full ring.
func BenchmarkClone(b *testing.B) {
	for _, cfg := range benchConfigs {
		b.Run(cfg.name, func(b *testing.B) {
			r := MustNew[int](WithCapacity(cfg.capacity))
			for !r.Full() {
				_ = r.Enqueue(1)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = r.Clone()
			}
		})
	}
}

// BenchmarkRejectFull measures the failure path, which must not allocate with the no-op logger.
func BenchmarkRejectFull(b *testing.B) {
	r := MustNew[int](WithCapacity(1))
	_ = r.Enqueue(0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Enqueue(i)
	}
}
