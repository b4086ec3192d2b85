package server

import (
	"context"
	"sync"

	"addonpair/internal/ledger"
	"addonpair/internal/logger"
	"addonpair/models"
)

// Handle is the host application's grip on a running pairing session. The
// caller that received it from Start owns it exclusively: resolution and
// shutdown go through the Handle, never around it.
type Handle struct {
	srv interface {
		Shutdown(ctx context.Context) error
	}
	ledger  *ledger.Ledger
	port    int
	baseURL string
	logger  *logger.Logger

	stopOnce sync.Once
	stopErr  error
}

// Port reports the bound listener port.
func (h *Handle) Port() int {
	return h.port
}

// BaseURL is the address the remote device should browse to, as encoded in
// the pairing QR code.
func (h *Handle) BaseURL() string {
	return h.baseURL
}

// ConfirmChange resolves the pending change with the given id as confirmed.
func (h *Handle) ConfirmChange(id string) error {
	return h.ledger.Resolve(id, models.ResolutionConfirmed)
}

// RejectChange resolves the pending change with the given id as rejected.
func (h *Handle) RejectChange(id string) error {
	return h.ledger.Resolve(id, models.ResolutionRejected)
}

// Stop discards any unresolved change and shuts the listener down. Safe to
// call more than once; later calls return the first result.
func (h *Handle) Stop(ctx context.Context) error {
	h.stopOnce.Do(func() {
		h.ledger.Discard()
		h.stopErr = h.srv.Shutdown(ctx)

		h.logger.Info().
			Int("port", h.port).
			Msg("pairing server stopped")
	})
	return h.stopErr
}
