// Package secrets keeps the Gemini API key out of config files: the OS
// keychain holds the persistent copy, the environment and the current session
// override it.
package secrets

import (
	"errors"
	"strings"

	"github.com/zalando/go-keyring"
)

// KeyringService groups the engine's secrets in the OS keychain.
const KeyringService = "khidi-engine"

func GetGeminiKey(keyringAccount string) (string, error) {
	if strings.TrimSpace(keyringAccount) == "" {
		return "", errors.New("keyring account name is empty")
	}
	key, err := keyring.Get(KeyringService, keyringAccount)
	if err != nil || strings.TrimSpace(key) == "" {
		return "", errors.New("Gemini API key not found in keychain")
	}
	return key, nil
}

func SetGeminiKey(keyringAccount string, key string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("API key is empty")
	}
	return keyring.Set(KeyringService, keyringAccount, key)
}

func DeleteGeminiKey(keyringAccount string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	err := keyring.Delete(KeyringService, keyringAccount)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
