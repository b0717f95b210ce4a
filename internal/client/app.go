package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/aixmultimodal/msgboard/internal/config"
	"github.com/aixmultimodal/msgboard/internal/logger"
	"github.com/aixmultimodal/msgboard/internal/service"
	"github.com/aixmultimodal/msgboard/internal/tui"
	"github.com/aixmultimodal/msgboard/internal/workers"
)

type App struct {
	syncClient *service.SyncClient
	refreshJob workers.RefreshJob
	ui         *tui.TUI
	workersCfg config.ClientWorkers
	logger     *logger.Logger
}

func NewApp(syncClient *service.SyncClient, ui *tui.TUI, workersCfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if syncClient == nil {
		return nil, fmt.Errorf("sync client is required")
	}
	if ui == nil {
		return nil, fmt.Errorf("ui is required")
	}

	return &App{
		syncClient: syncClient,
		refreshJob: workers.NewRefreshJob(syncClient),
		ui:         ui,
		workersCfg: workersCfg,
		logger:     log,
	}, nil
}

// Run performs the initial synchronization, starts background polling when
// configured, and blocks in the UI until the user quits.
func (a *App) Run() error {
	ctx := context.Background()

	if err := a.syncClient.Refresh(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.Run").Msg("initial refresh failed")
	}

	a.refreshJob.Start(ctx, a.workersCfg.RefreshInterval)
	defer a.refreshJob.Stop()

	if err := a.ui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	return nil
}
