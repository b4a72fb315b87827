package llm

import (
	"context"
	"errors"
)

// ErrMissingAPIKey is returned by every generation call when no API
// credential was configured. Startup is never blocked on a missing key; the
// failure surfaces on first use instead.
var ErrMissingAPIKey = errors.New("authentication failed: no API key configured")

// Unauthenticated returns a Client whose generation calls always fail with
// ErrMissingAPIKey.
func Unauthenticated() Client {
	return unauthenticatedClient{}
}

type unauthenticatedClient struct{}

func (unauthenticatedClient) GenerateJSON(context.Context, Request) (string, error) {
	return "", ErrMissingAPIKey
}

func (unauthenticatedClient) GetModel(ModelTier) string { return "" }

func (unauthenticatedClient) Close() error { return nil }
