package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// TokenFile is where the session token is kept between invocations.
	TokenFile string
	// LogLevel is a zerolog level name.
	LogLevel string
}

// GetClientConfig builds and validates a client-specific config view.
//
// Command-line arguments belong to the CLI's own command tree, so only
// environment variables and the JSON file named by CONFIG are read here.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		TokenFile: cfg.Client.TokenFile,
		LogLevel:  cfg.App.LogLevel,
	}

	return clientCfg, clientCfg.validate()
}
