package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for decoding the JSON
// config file. Durations are accepted as strings ("15m") or nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		SessionDuration  Duration `json:"session_duration"`
		PasswordHashCost int      `json:"password_hash_cost"`
		LogLevel         string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress       string   `json:"http_address"`
		RequestTimeout    Duration `json:"request_timeout"`
		RateLimitRequests int      `json:"rate_limit_requests"`
		RateLimitWindow   Duration `json:"rate_limit_window"`
	} `json:"server,omitempty"`

	Workers struct {
		SessionSweepInterval Duration `json:"session_sweep_interval"`
	} `json:"workers,omitempty"`
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
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			SessionDuration:  time.Duration(jsonCfg.App.SessionDuration),
			PasswordHashCost: jsonCfg.App.PasswordHashCost,
			LogLevel:         jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:       jsonCfg.Server.HTTPAddress,
			RequestTimeout:    time.Duration(jsonCfg.Server.RequestTimeout),
			RateLimitRequests: jsonCfg.Server.RateLimitRequests,
			RateLimitWindow:   time.Duration(jsonCfg.Server.RateLimitWindow),
		},
		Workers: Workers{
			SessionSweepInterval: time.Duration(jsonCfg.Workers.SessionSweepInterval),
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
