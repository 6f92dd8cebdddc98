// Package auth supplies the bearer token for Graph requests. The token is
// an injected capability so the HTTP layer and the MCP handlers never read
// ambient credential state directly and tests can substitute a static
// source.
package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	keyringService = "planner-mcp"
	keyringUser    = "graph-access-token"

	// EnvToken overrides the keyring when set, for headless systems and CI.
	EnvToken = "GRAPH_ACCESS_TOKEN"
)

// ErrNoToken means no access token is stored anywhere we looked.
var ErrNoToken = errors.New("no Graph access token found: run 'planner-mcp auth login' or set " + EnvToken)

// TokenSource hands out the current bearer token for one request.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenSource returns the same token on every call. Used by tests and
// by the env-var override path.
type StaticTokenSource string

func (s StaticTokenSource) Token(context.Context) (string, error) {
	if s == "" {
		return "", ErrNoToken
	}
	return string(s), nil
}

// KeyringTokenSource reads the token stored by 'auth login' on every call,
// so a re-login is picked up without restarting the server.
type KeyringTokenSource struct{}

func (KeyringTokenSource) Token(context.Context) (string, error) {
	tok, err := keyring.Get(keyringService, keyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("keyring read failed: %w", err)
	}
	return tok, nil
}

// DefaultTokenSource prefers the environment override, then the keyring.
func DefaultTokenSource() TokenSource {
	if tok := strings.TrimSpace(os.Getenv(EnvToken)); tok != "" {
		return StaticTokenSource(tok)
	}
	return KeyringTokenSource{}
}

// StoreToken saves the token to the system keyring.
func StoreToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("token is empty")
	}
	return keyring.Set(keyringService, keyringUser, token)
}

// DeleteToken removes the stored token. Missing tokens are not an error.
func DeleteToken() error {
	err := keyring.Delete(keyringService, keyringUser)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

// HasToken reports whether a token is available from any source.
func HasToken() bool {
	_, err := DefaultTokenSource().Token(context.Background())
	return err == nil
}
