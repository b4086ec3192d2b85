package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"addonpair/internal/config"
	"addonpair/internal/ledger"
	"addonpair/internal/logger"
	"addonpair/models"
)

type stubFetcher struct{}

func (stubFetcher) Manifest(context.Context, string) (models.Manifest, error) {
	return models.Manifest{ID: "stub", Name: "Stub"}, nil
}

func testHooks(delivered *[]models.Proposal) Hooks {
	return Hooks{
		Addons: func(context.Context) ([]models.AddonRef, error) {
			return []models.AddonRef{{URL: "https://a.com", Name: "A"}}, nil
		},
		OnProposal: func(p models.Proposal) {
			*delivered = append(*delivered, p)
		},
	}
}

func startForTest(t *testing.T, cfg config.Server) (*Handle, *[]models.Proposal) {
	t.Helper()

	delivered := &[]models.Proposal{}
	h, err := Start(cfg, "127.0.0.1", stubFetcher{}, testHooks(delivered), logger.Nop())
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		h.Stop(ctx)
	})

	return h, delivered
}

func TestStart_BindsWithinRangeAndServes(t *testing.T) {
	cfg := config.Server{PortFrom: 38790, PortTo: 38799, RequestTimeout: 5 * time.Second}

	h, _ := startForTest(t, cfg)

	assert.GreaterOrEqual(t, h.Port(), cfg.PortFrom)
	assert.LessOrEqual(t, h.Port(), cfg.PortTo)
	assert.Equal(t, fmt.Sprintf("http://127.0.0.1:%d", h.Port()), h.BaseURL())

	resp, err := http.Get(h.BaseURL() + "/api/addons")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.AddonsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Addons, 1)
	assert.Equal(t, "https://a.com", body.Addons[0].URL)
}

func TestStart_SkipsTakenPort(t *testing.T) {
	blocker, err := net.Listen("tcp", ":38800")
	require.NoError(t, err)
	defer blocker.Close()

	cfg := config.Server{PortFrom: 38800, PortTo: 38805, RequestTimeout: 5 * time.Second}
	h, _ := startForTest(t, cfg)

	assert.Greater(t, h.Port(), 38800, "must skip the occupied first candidate")
}

func TestStart_RangeExhausted(t *testing.T) {
	var blockers []net.Listener
	for port := 38810; port <= 38811; port++ {
		l, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		require.NoError(t, err)
		blockers = append(blockers, l)
	}
	defer func() {
		for _, l := range blockers {
			l.Close()
		}
	}()

	cfg := config.Server{PortFrom: 38810, PortTo: 38811, RequestTimeout: 5 * time.Second}
	_, err := Start(cfg, "127.0.0.1", stubFetcher{}, testHooks(&[]models.Proposal{}), logger.Nop())

	assert.ErrorIs(t, err, ErrNoPortAvailable)
}

func TestHandle_ConfirmResolvesProposedChange(t *testing.T) {
	cfg := config.Server{PortFrom: 38820, PortTo: 38829, RequestTimeout: 5 * time.Second}
	h, delivered := startForTest(t, cfg)

	payload, _ := json.Marshal(models.ProposeRequest{URLs: []string{"https://a.com", "https://b.com"}})
	resp, err := http.Post(h.BaseURL()+"/api/addons", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var proposed models.ProposeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&proposed))
	require.Len(t, *delivered, 1, "hook must see the staged proposal")

	require.NoError(t, h.ConfirmChange(proposed.ChangeID))

	statusResp, err := http.Get(h.BaseURL() + "/api/changes/" + proposed.ChangeID)
	require.NoError(t, err)
	defer statusResp.Body.Close()

	var status models.ChangeStatusResponse
	require.NoError(t, json.NewDecoder(statusResp.Body).Decode(&status))
	assert.Equal(t, "confirmed", status.Status)

	assert.ErrorIs(t, h.ConfirmChange(proposed.ChangeID), ledger.ErrAlreadyResolved)
}

func TestHandle_StopDiscardsPendingChange(t *testing.T) {
	cfg := config.Server{PortFrom: 38830, PortTo: 38839, RequestTimeout: 5 * time.Second}
	h, _ := startForTest(t, cfg)

	payload, _ := json.Marshal(models.ProposeRequest{URLs: []string{"https://b.com"}})
	resp, err := http.Post(h.BaseURL()+"/api/addons", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var proposed models.ProposeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&proposed))
	resp.Body.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, h.Stop(ctx))

	// The listener is gone and the change was discarded with it.
	_, err = http.Get(h.BaseURL() + "/api/changes/" + proposed.ChangeID)
	assert.Error(t, err)

	assert.NoError(t, h.Stop(ctx), "Stop is idempotent")
}
