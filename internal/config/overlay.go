// config/overlay.go
package config

import (
	"os"
	"strconv"
)

// OverlayEnv applies environment overrides on top of the loaded file.
// Useful for pointing the engine at a staging API without editing config.
func OverlayEnv(cfg *Config) {
	if v := os.Getenv("ENRICH_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.App.Port = port
		}
	}
	if v := os.Getenv("LUSHA_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
}
