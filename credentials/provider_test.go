/*
Copyright 2026 MindFlow Authors
SPDX-License-Identifier: Apache-2.0
*/

package credentials

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryProviderOverride(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryProvider(Static("env-default"))

	key, err := p.APIKey(ctx)
	if err != nil {
		t.Fatalf("APIKey() error: %v", err)
	}
	if key != "env-default" {
		t.Errorf("APIKey() = %q, want fallback %q", key, "env-default")
	}

	if err := p.SetAPIKey(ctx, "user-key"); err != nil {
		t.Fatalf("SetAPIKey() error: %v", err)
	}
	key, err = p.APIKey(ctx)
	if err != nil {
		t.Fatalf("APIKey() error: %v", err)
	}
	if key != "user-key" {
		t.Errorf("APIKey() = %q, want override %q", key, "user-key")
	}

	// Clearing the override restores the fallback.
	if err := p.SetAPIKey(ctx, "   "); err != nil {
		t.Fatalf("SetAPIKey() error: %v", err)
	}
	key, err = p.APIKey(ctx)
	if err != nil {
		t.Fatalf("APIKey() error: %v", err)
	}
	if key != "env-default" {
		t.Errorf("APIKey() after clear = %q, want %q", key, "env-default")
	}
}

func TestMemoryProviderNoFallback(t *testing.T) {
	p := NewMemoryProvider(nil)
	if _, err := p.APIKey(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Errorf("APIKey() error = %v, want ErrNotFound", err)
	}
}

func TestEnvProvider(t *testing.T) {
	ctx := context.Background()
	t.Setenv("GEMINI_API_KEY", "from-env")

	p, err := NewEnvProvider(ctx)
	if err != nil {
		t.Fatalf("NewEnvProvider() error: %v", err)
	}
	key, err := p.APIKey(ctx)
	if err != nil {
		t.Fatalf("APIKey() error: %v", err)
	}
	if key != "from-env" {
		t.Errorf("APIKey() = %q, want %q", key, "from-env")
	}
	if err := p.SetAPIKey(ctx, "x"); err == nil {
		t.Error("SetAPIKey() on env provider should fail")
	}
}

func TestEnvProviderMissing(t *testing.T) {
	ctx := context.Background()
	t.Setenv("GEMINI_API_KEY", "")

	p, err := NewEnvProvider(ctx)
	if err != nil {
		t.Fatalf("NewEnvProvider() error: %v", err)
	}
	if _, err := p.APIKey(ctx); !errors.Is(err, ErrNotFound) {
		t.Errorf("APIKey() error = %v, want ErrNotFound", err)
	}
}
