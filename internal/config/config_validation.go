package config

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants the application relies on at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.PortFrom <= 0 || cfg.Server.PortTo < cfg.Server.PortFrom {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Fetcher.Timeout <= 0 {
		return ErrInvalidFetcherConfigs
	}

	return nil
}
