package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"addonpair/internal/session"
	"addonpair/internal/store"
	"addonpair/models"
)

// screen is the pairing TUI's active view. Exactly one holds at a time; the
// proposal field is only meaningful on screenConfirm and screenCommitting.
type screen int

const (
	screenPairing screen = iota
	screenConfirm
	screenCommitting
)

type pairingModel struct {
	ctx         context.Context
	coordinator *session.Coordinator
	repo        store.AddonRepository

	screen   screen
	proposal models.Proposal

	baseURL   string
	qrArt     string
	addons    []models.AddonRef
	status    string
	statusErr bool

	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	updates <-chan []models.AddonRef
	spin    spinner.Model

	quitByUser bool
}

func newPairingModel(ctx context.Context, coordinator *session.Coordinator, repo store.AddonRepository, baseURL, qrArt string, buildInfo models.AppBuildInfo) pairingModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return pairingModel{
		ctx:         ctx,
		coordinator: coordinator,
		repo:        repo,
		baseURL:     baseURL,
		qrArt:       qrArt,
		buildInfo:   buildInfo.Normalize(),
		updates:     repo.Watch(),
		spin:        s,
	}
}

func (m pairingModel) Init() tea.Cmd {
	return tea.Batch(m.loadAddons(), m.waitForUpdate())
}

func (m pairingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case proposalMsg:
		m.screen = screenConfirm
		m.proposal = msg.proposal
		m.status = ""
		return m, nil

	case addonsLoadedMsg:
		if msg.err != nil {
			m.status = "failed to load addon list: " + msg.err.Error()
			m.statusErr = true
			return m, nil
		}
		m.addons = msg.addons
		return m, nil

	case addonsUpdatedMsg:
		m.addons = msg.addons
		return m, m.waitForUpdate()

	case commitDoneMsg:
		m.screen = screenPairing
		if msg.err != nil {
			m.status = "change failed and was rejected: " + msg.err.Error()
			m.statusErr = true
		} else {
			m.status = "change applied"
			m.statusErr = false
		}
		return m, tea.Batch(m.loadAddons(), m.clearStatusLater())

	case rejectedMsg:
		m.screen = screenPairing
		m.status = "change rejected"
		m.statusErr = false
		return m, m.clearStatusLater()

	case copiedMsg:
		if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
			m.statusErr = true
		} else {
			m.status = "pairing URL copied"
			m.statusErr = false
		}
		return m, m.clearStatusLater()

	case clearStatusMsg:
		m.status = ""
		m.statusErr = false
		return m, nil

	case spinner.TickMsg:
		if m.screen != screenCommitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m pairingModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) && m.screen != screenConfirm {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch m.screen {
	case screenPairing:
		switch {
		case key.Matches(msg, keys.copy):
			return m, m.copyBaseURL()
		case key.Matches(msg, keys.buildInfo):
			m.showBuildInfo = true
			return m, nil
		}

	case screenConfirm:
		switch {
		case key.Matches(msg, keys.yes):
			m.screen = screenCommitting
			return m, tea.Batch(m.spin.Tick, m.confirm())
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			return m, m.reject()
		}

	case screenCommitting:
		// Input is ignored while the commit runs.
	}

	return m, nil
}

// ---- Commands ----

func (m pairingModel) loadAddons() tea.Cmd {
	return func() tea.Msg {
		addons, err := m.repo.List(m.ctx)
		return addonsLoadedMsg{addons: addons, err: err}
	}
}

// waitForUpdate re-arms itself after every delivery so the committed list on
// screen always tracks the store.
func (m pairingModel) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		addons, ok := <-m.updates
		if !ok {
			return nil
		}
		return addonsUpdatedMsg{addons: addons}
	}
}

func (m pairingModel) confirm() tea.Cmd {
	return func() tea.Msg {
		return commitDoneMsg{err: m.coordinator.Confirm(m.ctx)}
	}
}

func (m pairingModel) reject() tea.Cmd {
	return func() tea.Msg {
		if err := m.coordinator.Reject(); err != nil {
			return commitDoneMsg{err: err}
		}
		return rejectedMsg{}
	}
}

func (m pairingModel) copyBaseURL() tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(m.baseURL)}
	}
}

func (m pairingModel) clearStatusLater() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// ---- Views ----

func (m pairingModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(m.buildInfoView())
	}

	switch m.screen {
	case screenConfirm:
		return appStyle.Render(m.confirmView())
	case screenCommitting:
		return appStyle.Render(m.committingView())
	default:
		return appStyle.Render(m.pairingView())
	}
}

func (m pairingModel) pairingView() string {
	var b strings.Builder

	b.WriteString("Scan with your phone to manage addons:\n\n")
	b.WriteString(m.qrArt)
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(m.baseURL))
	b.WriteString("\n\n")

	b.WriteString("Installed addons:\n")
	if len(m.addons) == 0 {
		b.WriteString("  (none)\n")
	}
	for i, ref := range m.addons {
		b.WriteString(fmt.Sprintf("  %2d. %s\n", i+1, fitText(ref.Name, 46)))
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(m.status)
		}
	}

	return renderPage("ADDON PAIRING", b.String(), "c: copy url    v: about    q: quit")
}

func (m pairingModel) confirmView() string {
	var b strings.Builder

	b.WriteString("The paired device proposes a change:\n\n")

	for _, url := range m.proposal.Diff.Added {
		b.WriteString(addedStyle.Render("  + " + fitText(url, 48)))
		b.WriteString("\n")
	}
	for _, url := range m.proposal.Diff.Removed {
		b.WriteString(removedStyle.Render("  - " + fitText(url, 48)))
		b.WriteString("\n")
	}
	if m.proposal.Reordered {
		b.WriteString("  ~ addon order changed\n")
	}

	b.WriteString("\nApply this change?\n\n")
	b.WriteString(helpStyle.Render("y: apply    n: reject"))

	return overlayBoxStyle.Render(b.String())
}

func (m pairingModel) committingView() string {
	return overlayBoxStyle.Render(m.spin.View() + " Applying change...")
}

func (m pairingModel) buildInfoView() string {
	var b strings.Builder

	b.WriteString("Application: addonpair\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(m.buildInfo.Version))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(m.buildInfo.Date))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(m.buildInfo.Commit))

	return renderPage("ABOUT", b.String(), "esc: back")
}
