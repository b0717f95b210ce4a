package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aixmultimodal/msgboard/internal/logger"
	"github.com/aixmultimodal/msgboard/internal/service"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	client  *service.SyncClient
	version string
}

func New(client *service.SyncClient, version string, _ *logger.Logger) (*TUI, error) {
	return &TUI{client: client, version: version}, nil
}

// Run blocks until the user quits or the program fails.
func (t *TUI) Run(ctx context.Context) error {
	model := newBoardModel(ctx, t.client, t.version)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(boardModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
