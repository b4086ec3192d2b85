package service

import (
	"context"
	"fmt"

	"addonpair/internal/logger"
	"addonpair/internal/normalize"
	"addonpair/models"
)

type validateService struct {
	fetcher ManifestFetcher
	logger  *logger.Logger
}

func NewValidateService(fetcher ManifestFetcher, log *logger.Logger) ValidateService {
	return &validateService{fetcher: fetcher, logger: log}
}

// Validate fetches the manifest behind rawURL and builds the AddonRef that
// will be committed. A manifest without a name still validates; the canonical
// URL stands in as the display name.
func (s *validateService) Validate(ctx context.Context, rawURL string) (models.AddonRef, error) {
	canonical := normalize.Canonical(rawURL)

	manifest, err := s.fetcher.Manifest(ctx, rawURL)
	if err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "validateService.Validate").
			Str("url", canonical).
			Msg("addon manifest unreachable or malformed")
		return models.AddonRef{}, fmt.Errorf("%w: %s: %v", ErrInvalidAddon, canonical, err)
	}

	name := manifest.Name
	if name == "" {
		name = canonical
	}

	return models.AddonRef{
		URL:         canonical,
		Name:        name,
		Description: manifest.Description,
	}, nil
}
