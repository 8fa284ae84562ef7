package config

import (
	"errors"

	"github.com/zalando/go-keyring"
)

// KeyringService is the OS keyring service name secrets are read from.
const KeyringService = "accessdbcheck"

// lookupSecret reads the password for user from the OS keyring. A missing
// entry is not an error.
func lookupSecret(user string) (string, error) {
	if user == "" {
		return "", nil
	}
	secret, err := keyring.Get(KeyringService, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return secret, nil
}
