package workers

import (
	"context"
	"time"
)

// Refresher is the part of the sync client the background job drives.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// RefreshJob periodically re-synchronizes client state with the backend.
type RefreshJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
