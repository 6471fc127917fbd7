// Package resource implements the Controller for process-wide limits on
// clustering runs.
//
// The Controller governs two resource types:
//
//   - Memory: Track and limit working-buffer memory (non-blocking, fail-fast)
//   - Concurrency: Limit the number of clustering workers running at once
//
// # Architecture
//
//	┌─────────────────────────────────────────┐
//	│              Controller                 │
//	├────────────────────┬────────────────────┤
//	│  Memory Limit      │  Worker Slots      │
//	│  (fail-fast)       │  (weighted sem)    │
//	├────────────────────┼────────────────────┤
//	│  AcquireMemory     │  AcquireWorker     │
//	│  ReleaseMemory     │  TryAcquireWorker  │
//	│  MemoryUsage       │  ReleaseWorker     │
//	└────────────────────┴────────────────────┘
//
// # Memory Management
//
// AcquireMemory is non-blocking and returns ErrMemoryLimitExceeded
// immediately if the reservation does not fit:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30, // 1GB limit
//	})
//
//	if err := rc.AcquireMemory(bytes); err != nil {
//	    // ErrMemoryLimitExceeded - caller decides retry/backoff
//	}
//	defer rc.ReleaseMemory(bytes)
//
// # Worker Limits
//
// A single Controller shared by concurrent Cluster calls bounds the total
// CPU fan-out of all of them:
//
//	rc := resource.NewController(resource.Config{MaxWorkers: 8})
//	res, err := fgt.Cluster(ctx, points, k, eps, start, fgt.WithResourceController(rc))
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
package resource
