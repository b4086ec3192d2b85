// Package fetcher retrieves and parses remote addon manifests.
package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"addonpair/internal/config"
	"addonpair/internal/logger"
	"addonpair/internal/normalize"
	"addonpair/models"
)

const defaultTimeout = 10 * time.Second

// ErrBadManifest is returned when the remote document is not a well-formed
// addon manifest.
var ErrBadManifest = errors.New("malformed addon manifest")

// Fetcher downloads <base-url>/manifest.json documents.
type Fetcher struct {
	client *resty.Client
	logger *logger.Logger
}

// New builds a Fetcher with the configured per-request timeout.
func New(cfg config.Fetcher, log *logger.Logger) *Fetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	cli := resty.New().SetTimeout(timeout)

	return &Fetcher{client: cli, logger: log}
}

// Manifest fetches and parses the manifest served under baseURL. The URL is
// canonicalized first, so both "https://foo.com/" and
// "stremio://foo.com/manifest.json" resolve to the same document.
func (f *Fetcher) Manifest(ctx context.Context, baseURL string) (models.Manifest, error) {
	manifestURL := normalize.Canonical(baseURL) + "/manifest.json"

	resp, err := f.client.R().SetContext(ctx).Get(manifestURL)
	if err != nil {
		return models.Manifest{}, fmt.Errorf("manifest request %s: %w", manifestURL, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return models.Manifest{}, fmt.Errorf("manifest request %s: http %d", manifestURL, resp.StatusCode())
	}

	var m models.Manifest
	if err = json.Unmarshal(resp.Body(), &m); err != nil {
		return models.Manifest{}, fmt.Errorf("decode manifest %s: %w", manifestURL, ErrBadManifest)
	}
	if m.ID == "" && m.Name == "" {
		return models.Manifest{}, fmt.Errorf("manifest %s has neither id nor name: %w", manifestURL, ErrBadManifest)
	}

	f.logger.Debug().
		Str("url", manifestURL).
		Str("addon_id", m.ID).
		Str("addon_name", m.Name).
		Int("catalogs", len(m.Catalogs)).
		Msg("fetched addon manifest")

	return m, nil
}
