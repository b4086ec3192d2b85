// Package session drives a pairing session on the TV side: it owns the
// server handle, tracks whether the user is being asked to confirm a change,
// and commits confirmed changes to the addon store.
package session

import (
	"context"
	"errors"
	"sync"

	"addonpair/internal/config"
	"addonpair/internal/logger"
	"addonpair/internal/netx"
	"addonpair/internal/normalize"
	"addonpair/internal/server"
	"addonpair/internal/service"
	"addonpair/internal/store"
	"addonpair/models"
)

// State is the coordinator's confirmation phase. Exactly one value holds at
// any time; there is no "maybe a proposal" nil-check anywhere downstream.
type State int

const (
	// StateIdle means no proposal is in flight. The session itself may
	// still be running and accepting device requests.
	StateIdle State = iota

	// StateAwaitingConfirmation means a staged proposal is waiting for the
	// user's decision.
	StateAwaitingConfirmation

	// StateCommitting means a confirmed proposal is being validated and
	// written to the store. User input is ignored until it completes.
	StateCommitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingConfirmation:
		return "awaiting_confirmation"
	case StateCommitting:
		return "committing"
	default:
		return "unknown"
	}
}

// ServerHandle is the slice of the pairing server the coordinator drives.
// *server.Handle satisfies it.
type ServerHandle interface {
	Port() int
	BaseURL() string
	ConfirmChange(id string) error
	RejectChange(id string) error
	Stop(ctx context.Context) error
}

// StartFunc boots a pairing server. Swapped for a fake in tests.
type StartFunc func(cfg config.Server, lanIP string, fetcher service.ManifestFetcher, hooks server.Hooks, log *logger.Logger) (ServerHandle, error)

// Deps are the coordinator's collaborators. Start and LANIP default to the
// real server bootstrap and interface scan when nil.
type Deps struct {
	Repo     store.AddonRepository
	Validate service.ValidateService
	Fetcher  service.ManifestFetcher
	Start    StartFunc
	LANIP    func() (string, error)
}

const proposalBuffer = 4

type Coordinator struct {
	cfg      config.Server
	logoPath string
	deps     Deps
	logger   *logger.Logger

	mu        sync.Mutex
	state     State
	handle    ServerHandle
	current   models.Proposal
	proposals chan models.Proposal
}

func NewCoordinator(cfg config.Server, logoPath string, deps Deps, log *logger.Logger) *Coordinator {
	if deps.Start == nil {
		deps.Start = func(cfg config.Server, lanIP string, fetcher service.ManifestFetcher, hooks server.Hooks, log *logger.Logger) (ServerHandle, error) {
			return server.Start(cfg, lanIP, fetcher, hooks, log)
		}
	}
	if deps.LANIP == nil {
		deps.LANIP = netx.LANIPv4
	}

	return &Coordinator{
		cfg:      cfg,
		logoPath: logoPath,
		deps:     deps,
		logger:   log,
	}
}

// StartSession boots the pairing server and returns its handle. The
// coordinator owns the handle; callers use the return value only to render
// the base URL and port.
func (c *Coordinator) StartSession(ctx context.Context) (ServerHandle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.handle != nil {
		return nil, ErrSessionActive
	}

	lanIP, err := c.deps.LANIP()
	if err != nil {
		return nil, err
	}

	c.proposals = make(chan models.Proposal, proposalBuffer)

	handle, err := c.deps.Start(c.cfg, lanIP, c.deps.Fetcher, server.Hooks{
		Addons:     c.deps.Repo.List,
		OnProposal: c.enqueue,
		LogoPath:   c.logoPath,
	}, c.logger)
	if err != nil {
		c.proposals = nil
		return nil, err
	}

	c.handle = handle
	c.state = StateIdle

	c.logger.Info().
		Str("base_url", handle.BaseURL()).
		Msg("pairing session started")

	return handle, nil
}

// Proposals is the channel the UI receives staged proposals on. Valid
// between StartSession and StopSession; closed on teardown.
func (c *Coordinator) Proposals() <-chan models.Proposal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.proposals
}

// State reports the current confirmation phase.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// enqueue runs on the proposing request's goroutine. It must not block: if
// the UI has not drained earlier notifications the newest proposal is still
// recorded as current, only the channel send is dropped.
func (c *Coordinator) enqueue(p models.Proposal) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.handle == nil {
		return
	}

	c.current = p
	c.state = StateAwaitingConfirmation

	select {
	case c.proposals <- p:
	default:
		c.logger.Warn().
			Str("change_id", p.Change.ID).
			Msg("proposal channel full, UI notification dropped")
	}
}

// Confirm applies the awaiting proposal: every proposed URL not already in
// the committed list is validated by fetching its manifest, URLs that fail
// validation are silently dropped, and the surviving list replaces the store
// in proposed order. The device's poll flips to confirmed only after the
// store write succeeds; a failed write rejects the change so the ledger
// never sticks in pending.
func (c *Coordinator) Confirm(ctx context.Context) error {
	c.mu.Lock()
	if c.handle == nil {
		c.mu.Unlock()
		return ErrNoSession
	}
	if c.state != StateAwaitingConfirmation {
		c.mu.Unlock()
		return ErrNoProposal
	}
	proposal := c.current
	handle := c.handle
	c.state = StateCommitting
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		if c.state == StateCommitting {
			c.state = StateIdle
		}
		c.mu.Unlock()
	}()

	final, err := c.buildFinalList(ctx, proposal.Change.ProposedURLs)
	if err != nil {
		handle.RejectChange(proposal.Change.ID)
		return err
	}

	if err = c.deps.Repo.Replace(ctx, final); err != nil {
		c.logger.Err(err).
			Str("change_id", proposal.Change.ID).
			Msg("failed to commit confirmed change, rejecting it")
		handle.RejectChange(proposal.Change.ID)
		return err
	}

	if err = handle.ConfirmChange(proposal.Change.ID); err != nil {
		// The store write already happened; only the poll status is off.
		c.logger.Err(err).
			Str("change_id", proposal.Change.ID).
			Msg("change committed but could not be resolved")
	}

	c.logger.Info().
		Str("change_id", proposal.Change.ID).
		Int("addons", len(final)).
		Msg("change confirmed and committed")

	return nil
}

// buildFinalList resolves proposed URLs into committed AddonRefs, preserving
// proposal order. Already-present addons keep their stored name and
// description without refetching; unknown URLs must validate or are dropped.
func (c *Coordinator) buildFinalList(ctx context.Context, proposedURLs []string) ([]models.AddonRef, error) {
	current, err := c.deps.Repo.List(ctx)
	if err != nil {
		return nil, err
	}

	known := make(map[string]models.AddonRef, len(current))
	for _, ref := range current {
		known[normalize.Key(ref.URL)] = ref
	}

	final := make([]models.AddonRef, 0, len(proposedURLs))
	seen := make(map[string]struct{}, len(proposedURLs))

	for _, rawURL := range proposedURLs {
		key := normalize.Key(rawURL)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if ref, ok := known[key]; ok {
			final = append(final, ref)
			continue
		}

		ref, validateErr := c.deps.Validate.Validate(ctx, rawURL)
		if validateErr != nil {
			if errors.Is(validateErr, service.ErrInvalidAddon) {
				c.logger.Warn().
					Str("url", rawURL).
					Msg("dropping invalid addon from confirmed change")
				continue
			}
			return nil, validateErr
		}

		final = append(final, ref)
	}

	return final, nil
}

// Reject dismisses the awaiting proposal without touching the store.
func (c *Coordinator) Reject() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.handle == nil {
		return ErrNoSession
	}
	if c.state != StateAwaitingConfirmation {
		return ErrNoProposal
	}

	if err := c.handle.RejectChange(c.current.Change.ID); err != nil {
		c.logger.Err(err).
			Str("change_id", c.current.Change.ID).
			Msg("failed to reject change")
	}

	c.logger.Info().
		Str("change_id", c.current.Change.ID).
		Msg("change rejected by user")

	c.state = StateIdle
	return nil
}

// StopSession shuts the pairing server down. Any unresolved proposal is
// discarded with it: the device's poll reports not_found afterwards.
func (c *Coordinator) StopSession(ctx context.Context) error {
	c.mu.Lock()
	handle := c.handle
	proposals := c.proposals
	c.handle = nil
	c.proposals = nil
	c.state = StateIdle
	c.mu.Unlock()

	if handle == nil {
		return ErrNoSession
	}

	err := handle.Stop(ctx)
	close(proposals)

	c.logger.Info().Msg("pairing session stopped")
	return err
}
