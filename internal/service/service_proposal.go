package service

import (
	"context"
	"fmt"

	"addonpair/internal/diff"
	"addonpair/internal/ledger"
	"addonpair/internal/logger"
	"addonpair/models"
)

type proposalService struct {
	ledger *ledger.Ledger
	addons AddonsProvider
	sink   ProposalSink
	logger *logger.Logger
}

func NewProposalService(l *ledger.Ledger, addons AddonsProvider, sink ProposalSink, log *logger.Logger) ProposalService {
	return &proposalService{
		ledger: l,
		addons: addons,
		sink:   sink,
		logger: log,
	}
}

// Propose stages urls as the session's pending change. The diff is computed
// against the committed list read at staging time; the confirmation step
// re-reads the list, so a stale snapshot here only affects the summary shown
// to the user, never what gets committed.
func (s *proposalService) Propose(ctx context.Context, urls []string) (models.PendingChange, models.Diff, error) {
	log := logger.FromContext(ctx)

	current, err := s.addons(ctx)
	if err != nil {
		log.Err(err).
			Str("func", "proposalService.Propose").
			Msg("failed to read committed addon list")
		return models.PendingChange{}, models.Diff{}, fmt.Errorf("read committed addons: %w", err)
	}

	d := diff.Compute(current, urls)
	identical := diff.Identical(current, urls)

	change, err := s.ledger.Propose(urls)
	if err != nil {
		return models.PendingChange{}, models.Diff{}, err
	}

	if identical {
		// Nothing to decide. Resolve immediately so the device's poll
		// reports confirmed and no prompt ever reaches the TV.
		if resolveErr := s.ledger.Resolve(change.ID, models.ResolutionConfirmed); resolveErr != nil {
			log.Err(resolveErr).
				Str("func", "proposalService.Propose").
				Str("change_id", change.ID).
				Msg("failed to auto-confirm no-op proposal")
		}

		log.Info().
			Str("change_id", change.ID).
			Msg("no-op proposal auto-confirmed")

		return change, d, nil
	}

	log.Info().
		Str("change_id", change.ID).
		Int("added", len(d.Added)).
		Int("removed", len(d.Removed)).
		Bool("reordered", d.Empty()).
		Msg("proposal staged, awaiting confirmation")

	s.sink(models.Proposal{
		Change:    change,
		Diff:      d,
		Reordered: d.Empty(),
	})

	return change, d, nil
}
