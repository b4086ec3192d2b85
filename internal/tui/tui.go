// Package tui is the TV-side screen: it shows the pairing QR code, the
// committed addon list, and the confirmation prompt for incoming changes.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"addonpair/internal/logger"
	"addonpair/internal/qr"
	"addonpair/internal/session"
	"addonpair/internal/store"
	"addonpair/internal/workers"
	"addonpair/models"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	coordinator *session.Coordinator
	repo        store.AddonRepository
	buildInfo   models.AppBuildInfo
	logger      *logger.Logger
}

func New(coordinator *session.Coordinator, repo store.AddonRepository, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	return &TUI{
		coordinator: coordinator,
		repo:        repo,
		buildInfo:   buildInfo,
		logger:      log,
	}, nil
}

// Run starts a pairing session, shows it on screen, and blocks until the
// user quits. The session and its pending work are torn down on exit.
func (t *TUI) Run(ctx context.Context) error {
	handle, err := t.coordinator.StartSession(ctx)
	if err != nil {
		return err
	}
	defer t.coordinator.StopSession(context.Background())

	qrArt, err := qr.Terminal(handle.BaseURL())
	if err != nil {
		return err
	}

	model := newPairingModel(ctx, t.coordinator, t.repo, handle.BaseURL(), qrArt, t.buildInfo)
	program := tea.NewProgram(model, tea.WithAltScreen())

	pump := workers.NewProposalPump(t.coordinator.Proposals(), func(p models.Proposal) {
		program.Send(proposalMsg{proposal: p})
	})
	workers.NewWorkers(pump).Run()
	defer pump.Stop()

	finalModel, err := program.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(pairingModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
