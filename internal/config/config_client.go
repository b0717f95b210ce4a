package config

import (
	"fmt"
	"time"
)

// Client view defaults. The base URL points at a locally running API server;
// the request timeout bounds every outbound call so an unresponsive backend
// cannot hang the UI forever.
const (
	DefaultBaseURL              = "http://localhost:8000"
	DefaultClientRequestTimeout = 15 * time.Second
)

// ClientHTTP holds network settings used by the client transport layer.
type ClientHTTP struct {
	// BaseURL is the root URL of the API server.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the background refresh job runs.
	// Zero or negative disables the job.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// HTTP contains client transport settings.
	HTTP ClientHTTP
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		HTTP: ClientHTTP{
			BaseURL:        cfg.Client.BaseURL,
			RequestTimeout: cfg.Client.RequestTimeout,
		},
		Workers: ClientWorkers{
			RefreshInterval: cfg.Workers.RefreshInterval,
		},
	}

	if clientCfg.HTTP.BaseURL == "" {
		clientCfg.HTTP.BaseURL = DefaultBaseURL
	}
	if clientCfg.HTTP.RequestTimeout <= 0 {
		clientCfg.HTTP.RequestTimeout = DefaultClientRequestTimeout
	}

	return clientCfg, clientCfg.validate()
}
