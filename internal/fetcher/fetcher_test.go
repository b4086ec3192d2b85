package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"addonpair/internal/config"
	"addonpair/internal/logger"
)

func newManifestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/manifest.json" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestManifest_Success(t *testing.T) {
	srv := newManifestServer(t, http.StatusOK, `{
		"id": "com.example.cinema",
		"name": "Cinema",
		"description": "Movies and series",
		"version": "1.2.0",
		"catalogs": [{"type": "movie", "id": "top", "name": "Top"}]
	}`)

	f := New(config.Fetcher{}, logger.Nop())
	m, err := f.Manifest(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "com.example.cinema", m.ID)
	assert.Equal(t, "Cinema", m.Name)
	assert.Equal(t, "Movies and series", m.Description)
	require.Len(t, m.Catalogs, 1)
	assert.Equal(t, "movie", m.Catalogs[0].Type)
}

func TestManifest_CanonicalizesBaseURL(t *testing.T) {
	srv := newManifestServer(t, http.StatusOK, `{"id": "com.example.a", "name": "A"}`)

	f := New(config.Fetcher{}, logger.Nop())

	// Trailing slash and an explicit manifest suffix both resolve to the
	// same document without doubling the path.
	_, err := f.Manifest(context.Background(), srv.URL+"/")
	require.NoError(t, err)

	_, err = f.Manifest(context.Background(), srv.URL+"/manifest.json")
	require.NoError(t, err)
}

func TestManifest_HTTPError(t *testing.T) {
	srv := newManifestServer(t, http.StatusNotFound, "not here")

	f := New(config.Fetcher{}, logger.Nop())
	_, err := f.Manifest(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 404")
}

func TestManifest_MalformedJSON(t *testing.T) {
	srv := newManifestServer(t, http.StatusOK, "{not json")

	f := New(config.Fetcher{}, logger.Nop())
	_, err := f.Manifest(context.Background(), srv.URL)

	assert.ErrorIs(t, err, ErrBadManifest)
}

func TestManifest_MissingIDAndName(t *testing.T) {
	srv := newManifestServer(t, http.StatusOK, `{"version": "1.0.0"}`)

	f := New(config.Fetcher{}, logger.Nop())
	_, err := f.Manifest(context.Background(), srv.URL)

	assert.ErrorIs(t, err, ErrBadManifest)
}

func TestManifest_UnreachableHost(t *testing.T) {
	f := New(config.Fetcher{Timeout: 200 * time.Millisecond}, logger.Nop())

	_, err := f.Manifest(context.Background(), "http://127.0.0.1:1")

	require.Error(t, err)
}

func TestManifest_ContextCancelled(t *testing.T) {
	srv := newManifestServer(t, http.StatusOK, `{"id": "x", "name": "X"}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := New(config.Fetcher{}, logger.Nop())
	_, err := f.Manifest(ctx, srv.URL)

	require.Error(t, err)
}
