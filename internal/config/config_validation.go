package config

import "strings"

// validate checks that the merged [StructuredConfig] satisfies basic
// invariants before it is narrowed into a server or client view. Source-level
// validation stays permissive: either binary may run with only the fields it
// needs, so the hard requirements live on the view types.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	switch cfg.Storage.DB.Driver {
	case DriverMemory:
	case DriverPostgres, DriverSQLite:
		if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.HTTP.BaseURL == "" || cfg.HTTP.RequestTimeout <= 0 {
		return ErrInvalidClientConfigs
	}

	return nil
}
