// Package http is the pairing API served to the remote device over the LAN.
package http

import (
	"addonpair/internal/ledger"
	"addonpair/internal/logger"
	"addonpair/internal/service"
)

type Handler struct {
	services *service.Services
	ledger   *ledger.Ledger
	addons   service.AddonsProvider
	logoPath string

	logger *logger.Logger
}

func NewHandler(services *service.Services, l *ledger.Ledger, addons service.AddonsProvider, logoPath string, logger *logger.Logger) *Handler {
	logger.Info().Msg("pairing http handler created")
	return &Handler{
		services: services,
		ledger:   l,
		addons:   addons,
		logoPath: logoPath,
		logger:   logger,
	}
}
