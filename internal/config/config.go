// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// friend-library server and client. It aggregates all sub-configurations and
// is populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: session signing, password hashing
	// cost, the default loan length and logging.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the CLI client uses to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Client holds local CLI client settings.
	Client Client `envPrefix:"CLIENT_"`

	// Port is the bare listen port used when Server.HTTPAddress is empty.
	// Env: PORT
	Port string `env:"PORT"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SessionSignKey is the HMAC key used to sign and verify session tokens.
	// Env: APP_SESSION_SIGN_KEY
	SessionSignKey string `env:"SESSION_SIGN_KEY"`

	// SessionIssuer is the "iss" claim embedded in every session token and
	// required when one is resolved.
	// Env: APP_SESSION_ISSUER
	SessionIssuer string `env:"SESSION_ISSUER"`

	// SessionDuration is how long a session stays valid after issuance.
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// PasswordHashCost is the bcrypt work factor.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// DefaultLoanLengthDays is assigned to newly registered users.
	// Env: APP_DEFAULT_LOAN_LENGTH_DAYS
	DefaultLoanLengthDays int `env:"DEFAULT_LOAN_LENGTH_DAYS"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// GeneratedSessionSignKey reports that no sign key was configured and a
	// random one was generated at startup. Sessions then do not survive a
	// restart.
	GeneratedSessionSignKey bool
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver selects the connector: "sqlite3" (default) or "pgx".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the SQLite file path or the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:5000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SessionCookieSecure marks the session cookie Secure.
	// Env: SERVER_SESSION_COOKIE_SECURE
	SessionCookieSecure bool `env:"SESSION_COOKIE_SECURE"`
}

// Adapter holds the outbound HTTP settings of the CLI client.
type Adapter struct {
	// HTTPAddress is the base URL of the server (e.g. "http://localhost:5000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Client holds local CLI client settings.
type Client struct {
	// TokenFile is where the session token is persisted between invocations.
	// Env: CLIENT_TOKEN_FILE
	TokenFile string `env:"TOKEN_FILE"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Unset fields are then filled with defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
