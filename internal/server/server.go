// Package server bootstraps the embedded pairing HTTP server. Each Start
// creates one pairing session: its own ledger, services, router, and
// listener, torn down together by Handle.Stop.
package server

import (
	"fmt"
	"net"
	"net/http"

	"addonpair/internal/config"
	handler "addonpair/internal/handler/http"
	"addonpair/internal/ledger"
	"addonpair/internal/logger"
	"addonpair/internal/service"
)

// Hooks connects a pairing session to the host application.
type Hooks struct {
	// Addons reads the committed addon list for GET /api/addons and for
	// diffing proposals.
	Addons service.AddonsProvider

	// OnProposal receives each staged proposal, synchronously, from the
	// proposing request's goroutine. Implementations must not block.
	OnProposal service.ProposalSink

	// LogoPath is the optional image served at GET /logo.
	LogoPath string
}

// Start binds the first free port in cfg's range and serves the pairing API
// on it. lanIP is only used to render the advertised base URL; the listener
// itself accepts on all interfaces. Returns ErrNoPortAvailable when the whole
// range is taken.
func Start(cfg config.Server, lanIP string, fetcher service.ManifestFetcher, hooks Hooks, log *logger.Logger) (*Handle, error) {
	l := ledger.New()
	services := service.NewServices(l, hooks.Addons, hooks.OnProposal, fetcher, log)
	router := handler.NewHandler(services, l, hooks.Addons, hooks.LogoPath, log).Init()

	listener, port, err := bindFirstFree(cfg.PortFrom, cfg.PortTo, log)
	if err != nil {
		return nil, err
	}

	srv := &http.Server{
		Handler:     router,
		ReadTimeout: cfg.RequestTimeout,
		IdleTimeout: 2 * cfg.RequestTimeout,
	}

	h := &Handle{
		srv:     srv,
		ledger:  l,
		port:    port,
		baseURL: fmt.Sprintf("http://%s:%d", lanIP, port),
		logger:  log,
	}

	go func() {
		if serveErr := srv.Serve(listener); serveErr != nil && serveErr != http.ErrServerClosed {
			log.Err(serveErr).
				Str("func", "server.Start").
				Int("port", port).
				Msg("pairing server stopped unexpectedly")
		}
	}()

	log.Info().
		Int("port", port).
		Str("base_url", h.baseURL).
		Msg("pairing server started")

	return h, nil
}

func bindFirstFree(from, to int, log *logger.Logger) (net.Listener, int, error) {
	for port := from; port <= to; port++ {
		listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err != nil {
			log.Debug().
				Int("port", port).
				Err(err).
				Msg("candidate port taken, trying next")
			continue
		}
		return listener, port, nil
	}
	return nil, 0, fmt.Errorf("%w: %d-%d", ErrNoPortAvailable, from, to)
}
