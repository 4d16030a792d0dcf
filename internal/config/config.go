// Package config loads the backend configuration from a YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/hanamedu/academy-backend/sheets"
)

// Config holds everything the backend needs to reach the source spreadsheet
// and serve the API.
type Config struct {
	SheetID     string `yaml:"sheet_id"`
	DataGID     string `yaml:"data_gid"`     // 교습소 조회 자료 tab
	PasswordGID string `yaml:"password_gid"` // tab whose A1 cell holds the access password
	Port        string `yaml:"port"`
	CORSOrigins string `yaml:"cors_origins"`
	// Fallback "data as of" label used when the sheet title carries no
	// recognizable date.
	DataAsOf string `yaml:"data_as_of"`
}

// Load reads the YAML config at path (optional) and applies env overrides.
// Every field has a usable default, so a missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	cfg.SheetID = sheets.GetEnvDefault("SHEET_ID", withDefault(cfg.SheetID, "1pHQNblzLHIE3Rfz9h622MXDLAAXtkyv4I06Zync2-Xk"))
	cfg.DataGID = sheets.GetEnvDefault("SHEET_DATA_GID", withDefault(cfg.DataGID, "2090335200"))
	cfg.PasswordGID = sheets.GetEnvDefault("SHEET_PASSWORD_GID", withDefault(cfg.PasswordGID, "1813814045"))
	cfg.Port = sheets.GetEnvDefault("PORT", withDefault(cfg.Port, "8080"))
	cfg.CORSOrigins = sheets.GetEnvDefault("CORS_ORIGINS",
		withDefault(cfg.CORSOrigins, "http://localhost:3000,http://localhost:5173,http://127.0.0.1:3000,http://127.0.0.1:5173"))
	cfg.DataAsOf = sheets.GetEnvDefault("DATA_AS_OF", cfg.DataAsOf)

	return cfg, nil
}

func withDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
