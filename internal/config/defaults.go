package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Tristano1/friend-library-system/models"
)

const (
	defaultSessionIssuer    = "friend-library"
	defaultSessionDuration  = 24 * time.Hour
	defaultLogLevel         = "info"
	defaultDBDriver         = "sqlite3"
	defaultDBDSN            = "users.db"
	defaultPort             = "5000"
	defaultRequestTimeout   = 10 * time.Second
	defaultAdapterAddress   = "http://localhost:5000"
	defaultTokenFileName    = ".friend_library_token"
	generatedSignKeyByteLen = 32
)

// applyDefaults fills every unset field. A missing session sign key is
// replaced with a random one and flagged in App.GeneratedSessionSignKey.
func (cfg *StructuredConfig) applyDefaults() error {
	if cfg.App.SessionSignKey == "" {
		key := make([]byte, generatedSignKeyByteLen)
		if _, err := rand.Read(key); err != nil {
			return fmt.Errorf("error generating session sign key: %w", err)
		}
		cfg.App.SessionSignKey = hex.EncodeToString(key)
		cfg.App.GeneratedSessionSignKey = true
	}
	if cfg.App.SessionIssuer == "" {
		cfg.App.SessionIssuer = defaultSessionIssuer
	}
	if cfg.App.SessionDuration == 0 {
		cfg.App.SessionDuration = defaultSessionDuration
	}
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = bcrypt.DefaultCost
	}
	if cfg.App.DefaultLoanLengthDays == 0 {
		cfg.App.DefaultLoanLengthDays = models.DefaultLoanLengthDays
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}

	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = defaultDBDriver
	}
	if cfg.Storage.DB.DSN == "" && cfg.Storage.DB.Driver == defaultDBDriver {
		cfg.Storage.DB.DSN = defaultDBDSN
	}

	if cfg.Server.HTTPAddress == "" {
		port := cfg.Port
		if port == "" {
			port = defaultPort
		}
		cfg.Server.HTTPAddress = ":" + port
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = defaultAdapterAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}

	if cfg.Client.TokenFile == "" {
		cfg.Client.TokenFile = defaultTokenFile()
	}

	return nil
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultTokenFileName
	}
	return filepath.Join(home, defaultTokenFileName)
}
