// Package secrets supplies named secrets and configuration values to the
// engine. Production deployments read from the process environment; tests
// use a fixed map.
package secrets

import (
	"fmt"
	"os"
)

// Provider returns the value of a named secret. A missing secret is an
// error, not an empty string: callers treat secret lookup failure as fatal
// to the operation that needed it.
type Provider interface {
	Get(name string) (string, error)
}

// Env reads secrets from environment variables.
type Env struct{}

// Get returns the environment variable value, or an error when unset.
func (Env) Get(name string) (string, error) {
	value, ok := os.LookupEnv(name)
	if !ok || value == "" {
		return "", fmt.Errorf("%s not found in environment", name)
	}
	return value, nil
}

// Static serves secrets from a fixed map. Intended for tests and embedded
// deployments that resolve secrets before constructing the engine.
type Static map[string]string

// Get returns the mapped value, or an error when the name is absent.
func (s Static) Get(name string) (string, error) {
	value, ok := s[name]
	if !ok {
		return "", fmt.Errorf("%s not found in static secrets", name)
	}
	return value, nil
}
