package service

import (
	"context"

	"addonpair/models"
)

// ProposalService stages device-submitted addon lists against the committed
// one.
type ProposalService interface {
	// Propose diffs urls against the committed list and stages the change.
	// A proposal identical to the committed list (same members, same order)
	// is confirmed immediately without involving the user.
	Propose(ctx context.Context, urls []string) (models.PendingChange, models.Diff, error)
}

// ValidateService resolves a raw addon URL into a displayable AddonRef by
// fetching its manifest.
type ValidateService interface {
	Validate(ctx context.Context, rawURL string) (models.AddonRef, error)
}

// ManifestFetcher is the piece of the fetcher the validator needs.
type ManifestFetcher interface {
	Manifest(ctx context.Context, baseURL string) (models.Manifest, error)
}

// AddonsProvider returns the current committed addon list.
type AddonsProvider func(ctx context.Context) ([]models.AddonRef, error)

// ProposalSink receives a staged proposal for user confirmation. Called
// synchronously from the proposing request's goroutine.
type ProposalSink func(models.Proposal)
