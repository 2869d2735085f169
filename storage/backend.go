// Package storage provides the key-value persistence used for save data.
package storage

import (
	"errors"
	"fmt"
	"regexp"
)

// Backend is the persistent key-value contract the game requires from its host
type Backend interface {
	// Get returns the stored value; ok is false when the key does not exist
	Get(key string) (value []byte, ok bool, err error)

	// Set atomically replaces the stored value
	Set(key string, value []byte) error

	// Delete removes the key, no-op if absent
	Delete(key string) error
}

// ErrInvalidKey is returned for keys outside [A-Za-z0-9._-]
var ErrInvalidKey = errors.New("invalid storage key")

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

func validateKey(key string) error {
	if !keyPattern.MatchString(key) || key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
