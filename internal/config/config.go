// engine/internal/config/config.go
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	API struct {
		BaseURL           string  `yaml:"base_url"`
		TimeoutSeconds    int     `yaml:"timeout_seconds"`
		RequestsPerSecond float64 `yaml:"requests_per_second"`
		Burst             int     `yaml:"burst"`
	} `yaml:"api"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

// Default is what a fresh install runs with before the settings form is
// ever touched.
func Default() Config {
	var cfg Config
	cfg.App.Port = 38472
	cfg.App.DataDir = "."
	cfg.API.BaseURL = "https://api.lusha.com"
	cfg.API.TimeoutSeconds = 20
	cfg.API.RequestsPerSecond = 2
	cfg.API.Burst = 4
	return cfg
}
