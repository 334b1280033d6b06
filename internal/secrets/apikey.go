// Package secrets keeps the Lusha API key in the OS keychain. It is the one
// value this engine persists; it never touches the config file or logs.
package secrets

import (
	"errors"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// Service groups the engine's secrets in the OS keychain.
	KeyringService = "enrich-engine"

	apiKeyAccount = "lusha:api_key"
)

var ErrNoAPIKey = errors.New("Lusha API key not found in keychain")

func GetAPIKey() (string, error) {
	key, err := keyring.Get(KeyringService, apiKeyAccount)
	if err != nil || strings.TrimSpace(key) == "" {
		return "", ErrNoAPIKey
	}
	return key, nil
}

func SetAPIKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("API key is empty")
	}
	return keyring.Set(KeyringService, apiKeyAccount, key)
}

func DeleteAPIKey() error {
	return keyring.Delete(KeyringService, apiKeyAccount)
}
