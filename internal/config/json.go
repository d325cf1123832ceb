package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		SessionSignKey        string   `json:"session_sign_key"`
		SessionIssuer         string   `json:"session_issuer"`
		SessionDuration       Duration `json:"session_duration"`
		PasswordHashCost      int      `json:"password_hash_cost"`
		DefaultLoanLengthDays int      `json:"default_loan_length_days"`
		LogLevel              string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress         string   `json:"http_address"`
		RequestTimeout      Duration `json:"request_timeout"`
		SessionCookieSecure bool     `json:"session_cookie_secure"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Client struct {
		TokenFile string `json:"token_file"`
	} `json:"client,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SessionSignKey:        jsonCfg.App.SessionSignKey,
			SessionIssuer:         jsonCfg.App.SessionIssuer,
			SessionDuration:       time.Duration(jsonCfg.App.SessionDuration),
			PasswordHashCost:      jsonCfg.App.PasswordHashCost,
			DefaultLoanLengthDays: jsonCfg.App.DefaultLoanLengthDays,
			LogLevel:              jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:         jsonCfg.Server.HTTPAddress,
			RequestTimeout:      time.Duration(jsonCfg.Server.RequestTimeout),
			SessionCookieSecure: jsonCfg.Server.SessionCookieSecure,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Client: Client{
			TokenFile: jsonCfg.Client.TokenFile,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
