/*
Copyright 2026 MindFlow Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package credentials supplies the generative-backend API key to the
// clients that need it. The key is user-writable at runtime and falls back
// to an environment-level default when no override has been stored.
package credentials

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/sethvargo/go-envconfig"
)

// ErrNotFound is returned when no API key is available from any source.
var ErrNotFound = errors.New("no API key configured")

// Provider reads and stores the generative-backend API key. Reads happen on
// every generation call; writes happen only on explicit user action, so
// implementations need not serialize writers beyond basic safety.
type Provider interface {
	// APIKey returns the current key, or ErrNotFound when none is set.
	APIKey(ctx context.Context) (string, error)
	// SetAPIKey stores a user-supplied key, overwriting any prior value.
	SetAPIKey(ctx context.Context, key string) error
}

type envConfig struct {
	APIKey string `env:"GEMINI_API_KEY"`
}

// envProvider reads the key from the environment and rejects writes.
type envProvider struct {
	key string
}

// NewEnvProvider returns a read-only provider backed by the GEMINI_API_KEY
// environment variable.
func NewEnvProvider(ctx context.Context) (Provider, error) {
	var cfg envConfig
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &envProvider{key: cfg.APIKey}, nil
}

func (p *envProvider) APIKey(context.Context) (string, error) {
	if p.key == "" {
		return "", ErrNotFound
	}
	return p.key, nil
}

func (p *envProvider) SetAPIKey(context.Context, string) error {
	return errors.New("environment-backed provider is read-only")
}

// MemoryProvider layers a user-supplied override on top of a fallback
// provider, mirroring a settings screen writing over an environment default.
type MemoryProvider struct {
	mu       sync.RWMutex
	override string
	fallback Provider
}

// NewMemoryProvider returns a writable provider. fallback may be nil, in
// which case only stored overrides are served.
func NewMemoryProvider(fallback Provider) *MemoryProvider {
	return &MemoryProvider{fallback: fallback}
}

// APIKey returns the stored override if present, otherwise defers to the
// fallback provider.
func (p *MemoryProvider) APIKey(ctx context.Context) (string, error) {
	p.mu.RLock()
	override := p.override
	p.mu.RUnlock()
	if override != "" {
		return override, nil
	}
	if p.fallback != nil {
		return p.fallback.APIKey(ctx)
	}
	return "", ErrNotFound
}

// SetAPIKey stores key as the override. An empty or whitespace-only key
// clears the override, restoring the fallback.
func (p *MemoryProvider) SetAPIKey(_ context.Context, key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.override = strings.TrimSpace(key)
	return nil
}

// Static returns a provider that always serves the given key. Intended for
// tests and one-shot tooling.
func Static(key string) Provider {
	mp := NewMemoryProvider(nil)
	mp.override = key
	return mp
}
