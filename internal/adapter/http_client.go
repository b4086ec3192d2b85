// Package adapter wraps the TV's pairing HTTP API for client-side tooling.
package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"addonpair/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpPairingAdapter struct {
	client *resty.Client
}

func NewHTTPPairingAdapter(cfg HTTPClientConfig) PairingAdapter {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpPairingAdapter{client: cli}
}

func (h *httpPairingAdapter) Addons(ctx context.Context) ([]models.AddonRef, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/addons")
	if err != nil {
		return nil, fmt.Errorf("addons request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: addons: %d", ErrUnexpectedStatus, resp.StatusCode())
	}

	var body models.AddonsResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("addons decode: %w", err)
	}
	return body.Addons, nil
}

func (h *httpPairingAdapter) Propose(ctx context.Context, urls []string) (models.ProposeResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ProposeRequest{URLs: urls}).
		Post("/api/addons")
	if err != nil {
		return models.ProposeResponse{}, fmt.Errorf("propose request: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusCreated:
	case http.StatusConflict:
		return models.ProposeResponse{}, ErrBusy
	default:
		return models.ProposeResponse{}, fmt.Errorf("%w: propose: %d", ErrUnexpectedStatus, resp.StatusCode())
	}

	var body models.ProposeResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.ProposeResponse{}, fmt.Errorf("propose decode: %w", err)
	}
	return body, nil
}

func (h *httpPairingAdapter) ChangeStatus(ctx context.Context, changeID string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/changes/" + changeID)
	if err != nil {
		return "", fmt.Errorf("change status request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("%w: change status: %d", ErrUnexpectedStatus, resp.StatusCode())
	}

	var body models.ChangeStatusResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("change status decode: %w", err)
	}
	return body.Status, nil
}
