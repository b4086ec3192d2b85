package service

import (
	"addonpair/internal/ledger"
	"addonpair/internal/logger"
)

type Services struct {
	ProposalService ProposalService
	ValidateService ValidateService
}

// NewServices wires a session's services around a shared ledger. addons must
// read the committed list; sink receives staged proposals for confirmation.
func NewServices(l *ledger.Ledger, addons AddonsProvider, sink ProposalSink, fetcher ManifestFetcher, log *logger.Logger) *Services {
	return &Services{
		ProposalService: NewProposalService(l, addons, sink, log),
		ValidateService: NewValidateService(fetcher, log),
	}
}
