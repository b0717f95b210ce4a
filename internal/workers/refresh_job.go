package workers

import (
	"context"
	"sync"
	"time"
)

type refreshJob struct {
	refresher Refresher

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a refreshJob that calls refresher.Refresh on a
// ticker. The job is idle until Start is called.
func NewRefreshJob(refresher Refresher) RefreshJob {
	return &refreshJob{refresher: refresher}
}

// Start implements RefreshJob. It stops any previously running job, then
// launches a background goroutine that calls Refresh every interval. A zero
// or negative interval disables polling entirely. The goroutine exits when
// ctx is cancelled or Stop is called.
func (j *refreshJob) Start(ctx context.Context, interval time.Duration) {
	j.Stop()

	if interval <= 0 {
		return
	}

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = j.refresher.Refresh(jobCtx)
			}
		}
	}()
}

// Stop implements RefreshJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
