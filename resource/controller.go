package resource

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits for solver runs.
type Config struct {
	// MaxWorkers is the maximum number of concurrent solver runs.
	// If 0, defaults to 1.
	MaxWorkers int64

	// LaunchesPerSec caps how fast new solver processes may be started.
	// External continuation solvers can be expensive to spawn; a burst of
	// launches at batch start can starve the runs already in flight.
	// If 0, unlimited.
	LaunchesPerSec float64

	// MemoryLimitBytes is the hard limit for in-flight trace diagnostics.
	// Long traverse runs can carry traces with millions of points.
	// If 0, no hard limit is enforced (only tracking).
	MemoryLimitBytes int64
}

// Controller manages global resources (worker slots, launch rate, memory)
// shared across all experiments of a campaign.
type Controller struct {
	cfg Config

	workerSem *semaphore.Weighted

	launchLimiter *rate.Limiter

	memSem  *semaphore.Weighted // nil if unlimited
	memUsed atomic.Int64
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 1
	}

	c := &Controller{
		cfg:       cfg,
		workerSem: semaphore.NewWeighted(cfg.MaxWorkers),
	}

	if cfg.LaunchesPerSec > 0 {
		c.launchLimiter = rate.NewLimiter(rate.Limit(cfg.LaunchesPerSec), 1)
	}

	if cfg.MemoryLimitBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}

	return c
}

// MaxWorkers returns the configured worker slot count.
func (c *Controller) MaxWorkers() int64 {
	return c.cfg.MaxWorkers
}

// AcquireWorker reserves a solver worker slot, blocking until one is free
// or ctx is canceled. It also waits for the launch rate limit, so callers
// get admission and pacing in one call.
func (c *Controller) AcquireWorker(ctx context.Context) error {
	if err := c.workerSem.Acquire(ctx, 1); err != nil {
		return err
	}
	if c.launchLimiter != nil {
		if err := c.launchLimiter.Wait(ctx); err != nil {
			c.workerSem.Release(1)
			return err
		}
	}
	return nil
}

// TryAcquireWorker reserves a worker slot without blocking.
// The launch rate limit is not consulted.
func (c *Controller) TryAcquireWorker() bool {
	return c.workerSem.TryAcquire(1)
}

// ReleaseWorker releases a worker slot.
func (c *Controller) ReleaseWorker() {
	c.workerSem.Release(1)
}

// AcquireMemory reserves memory for trace diagnostics.
// If a hard limit is configured and usage would exceed it,
// this blocks until memory is available or ctx is canceled.
func (c *Controller) AcquireMemory(ctx context.Context, bytes int64) error {
	if c == nil || bytes <= 0 {
		return nil
	}

	if c.memSem != nil {
		if err := c.memSem.Acquire(ctx, bytes); err != nil {
			return err
		}
	}

	c.memUsed.Add(bytes)
	return nil
}

// ReleaseMemory releases reserved memory.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}

	if c.memSem != nil {
		c.memSem.Release(bytes)
	}
	c.memUsed.Add(-bytes)
}

// MemoryUsage returns the current memory usage in bytes.
func (c *Controller) MemoryUsage() int64 {
	return c.memUsed.Load()
}
