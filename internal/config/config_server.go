package config

import (
	"fmt"
	"time"
)

// Defaults applied by the server and client config views when neither the
// environment, flags, nor the JSON file provide a value. The defaults assume
// the API on port 8000 with a browser UI served from localhost:3000.
const (
	DefaultHTTPAddress    = "0.0.0.0:8000"
	DefaultRequestTimeout = 30 * time.Second
	DefaultVersion        = "1.0.0"
	DefaultDriver         = DriverMemory
)

// Supported storage drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DefaultCORSOrigins returns the origins allowed when none are configured.
func DefaultCORSOrigins() []string {
	return []string{"http://localhost:3000", "http://127.0.0.1:3000"}
}

// ServerConfig is the server-specific view of the merged configuration.
type ServerConfig struct {
	// App contains application-level settings.
	App App
	// Server contains the inbound transport settings.
	Server Server
	// Storage contains the persistence backend settings.
	Storage Storage
}

// GetServerConfig builds and validates a server-specific config view from
// the merged structured configuration, applying defaults for any field left
// unset by all sources.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App:     cfg.App,
		Server:  cfg.Server,
		Storage: cfg.Storage,
	}

	if serverCfg.Server.HTTPAddress == "" {
		serverCfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if serverCfg.Server.RequestTimeout <= 0 {
		serverCfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if len(serverCfg.Server.CORSOrigins) == 0 {
		serverCfg.Server.CORSOrigins = DefaultCORSOrigins()
	}
	if serverCfg.App.Version == "" {
		serverCfg.App.Version = DefaultVersion
	}
	if serverCfg.Storage.DB.Driver == "" {
		serverCfg.Storage.DB.Driver = DefaultDriver
	}

	return serverCfg, serverCfg.validate()
}
