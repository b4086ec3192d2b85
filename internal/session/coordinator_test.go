package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"addonpair/internal/config"
	"addonpair/internal/logger"
	"addonpair/internal/server"
	"addonpair/internal/service"
	"addonpair/models"
)

// ---- Fakes ----

type fakeHandle struct {
	mu        sync.Mutex
	confirmed []string
	rejected  []string
	stopped   bool
}

func (f *fakeHandle) Port() int       { return 8790 }
func (f *fakeHandle) BaseURL() string { return "http://192.168.1.42:8790" }

func (f *fakeHandle) ConfirmChange(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.confirmed = append(f.confirmed, id)
	return nil
}

func (f *fakeHandle) RejectChange(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rejected = append(f.rejected, id)
	return nil
}

func (f *fakeHandle) Stop(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
	return nil
}

type fakeRepo struct {
	mu         sync.Mutex
	addons     []models.AddonRef
	replaceErr error
	replaced   [][]models.AddonRef
}

func (f *fakeRepo) List(context.Context) ([]models.AddonRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.AddonRef(nil), f.addons...), nil
}

func (f *fakeRepo) Replace(_ context.Context, addons []models.AddonRef) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.addons = append([]models.AddonRef(nil), addons...)
	f.replaced = append(f.replaced, f.addons)
	return nil
}

func (f *fakeRepo) Watch() <-chan []models.AddonRef {
	return make(chan []models.AddonRef)
}

type fakeValidator struct {
	valid map[string]models.AddonRef
}

func (f *fakeValidator) Validate(_ context.Context, rawURL string) (models.AddonRef, error) {
	ref, ok := f.valid[rawURL]
	if !ok {
		return models.AddonRef{}, service.ErrInvalidAddon
	}
	return ref, nil
}

// ---- Helper ----

type testRig struct {
	coordinator *Coordinator
	handle      *fakeHandle
	repo        *fakeRepo
	validator   *fakeValidator
	hooks       server.Hooks
}

func newTestRig(t *testing.T, committed []models.AddonRef) *testRig {
	t.Helper()

	rig := &testRig{
		handle:    &fakeHandle{},
		repo:      &fakeRepo{addons: committed},
		validator: &fakeValidator{valid: map[string]models.AddonRef{}},
	}

	deps := Deps{
		Repo:     rig.repo,
		Validate: rig.validator,
		Start: func(_ config.Server, _ string, _ service.ManifestFetcher, hooks server.Hooks, _ *logger.Logger) (ServerHandle, error) {
			rig.hooks = hooks
			return rig.handle, nil
		},
		LANIP: func() (string, error) { return "192.168.1.42", nil },
	}

	rig.coordinator = NewCoordinator(config.Server{PortFrom: 8790, PortTo: 8799}, "", deps, logger.Nop())

	_, err := rig.coordinator.StartSession(context.Background())
	require.NoError(t, err)

	return rig
}

func (r *testRig) propose(urls ...string) models.Proposal {
	p := models.Proposal{
		Change: models.PendingChange{
			ID:           "change-1",
			ProposedURLs: urls,
			CreatedAt:    time.Now(),
		},
	}
	r.hooks.OnProposal(p)
	return p
}

// ---- Tests ----

func TestStartSession_SecondStartFails(t *testing.T) {
	rig := newTestRig(t, nil)

	_, err := rig.coordinator.StartSession(context.Background())

	assert.ErrorIs(t, err, ErrSessionActive)
}

func TestProposalReachesUIChannel(t *testing.T) {
	rig := newTestRig(t, nil)

	staged := rig.propose("https://a.com")

	assert.Equal(t, StateAwaitingConfirmation, rig.coordinator.State())

	select {
	case got := <-rig.coordinator.Proposals():
		assert.Equal(t, staged.Change.ID, got.Change.ID)
	default:
		t.Fatal("expected the proposal on the UI channel")
	}
}

func TestConfirm_CommitsValidatedListInProposedOrder(t *testing.T) {
	rig := newTestRig(t, []models.AddonRef{
		{URL: "https://a.com", Name: "Addon A", Description: "kept"},
	})
	rig.validator.valid["https://b.com"] = models.AddonRef{URL: "https://b.com", Name: "Addon B"}

	rig.propose("https://b.com", "stremio://a.com/manifest.json")

	require.NoError(t, rig.coordinator.Confirm(context.Background()))

	require.Len(t, rig.repo.replaced, 1)
	final := rig.repo.replaced[0]
	require.Len(t, final, 2)
	assert.Equal(t, "Addon B", final[0].Name)
	assert.Equal(t, "Addon A", final[1].Name, "already-present addon keeps its stored metadata without refetch")

	assert.Equal(t, []string{"change-1"}, rig.handle.confirmed)
	assert.Equal(t, StateIdle, rig.coordinator.State())
}

func TestConfirm_SilentlyDropsInvalidURLs(t *testing.T) {
	rig := newTestRig(t, nil)
	rig.validator.valid["https://good.com"] = models.AddonRef{URL: "https://good.com", Name: "Good"}

	rig.propose("https://dead.example", "https://good.com")

	require.NoError(t, rig.coordinator.Confirm(context.Background()))

	require.Len(t, rig.repo.replaced, 1)
	final := rig.repo.replaced[0]
	require.Len(t, final, 1)
	assert.Equal(t, "https://good.com", final[0].URL)

	assert.Equal(t, []string{"change-1"}, rig.handle.confirmed, "change still confirms after dropping invalid entries")
}

func TestConfirm_StoreErrorRejectsChange(t *testing.T) {
	rig := newTestRig(t, nil)
	rig.repo.replaceErr = errors.New("disk full")
	rig.validator.valid["https://a.com"] = models.AddonRef{URL: "https://a.com", Name: "A"}

	rig.propose("https://a.com")

	err := rig.coordinator.Confirm(context.Background())

	require.Error(t, err)
	assert.Empty(t, rig.handle.confirmed)
	assert.Equal(t, []string{"change-1"}, rig.handle.rejected, "failed commit must not leave the change pending")
	assert.Equal(t, StateIdle, rig.coordinator.State())
}

func TestConfirm_WithoutProposal(t *testing.T) {
	rig := newTestRig(t, nil)

	assert.ErrorIs(t, rig.coordinator.Confirm(context.Background()), ErrNoProposal)
}

func TestReject_ResolvesWithoutTouchingStore(t *testing.T) {
	rig := newTestRig(t, []models.AddonRef{{URL: "https://a.com", Name: "A"}})

	rig.propose("https://b.com")

	require.NoError(t, rig.coordinator.Reject())

	assert.Empty(t, rig.repo.replaced)
	assert.Equal(t, []string{"change-1"}, rig.handle.rejected)
	assert.Equal(t, StateIdle, rig.coordinator.State())
}

func TestStopSession_DiscardsAwaitingProposal(t *testing.T) {
	rig := newTestRig(t, nil)

	rig.propose("https://a.com")
	proposals := rig.coordinator.Proposals()

	require.NoError(t, rig.coordinator.StopSession(context.Background()))

	assert.True(t, rig.handle.stopped)
	assert.Equal(t, StateIdle, rig.coordinator.State())
	assert.ErrorIs(t, rig.coordinator.Confirm(context.Background()), ErrNoSession)

	// The channel is drained of the stale proposal and then closed.
	<-proposals
	_, open := <-proposals
	assert.False(t, open)
}

func TestStopSession_WithoutSession(t *testing.T) {
	c := NewCoordinator(config.Server{}, "", Deps{
		Repo:     &fakeRepo{},
		Validate: &fakeValidator{},
		Start: func(config.Server, string, service.ManifestFetcher, server.Hooks, *logger.Logger) (ServerHandle, error) {
			return &fakeHandle{}, nil
		},
		LANIP: func() (string, error) { return "10.0.0.1", nil },
	}, logger.Nop())

	assert.ErrorIs(t, c.StopSession(context.Background()), ErrNoSession)
}
