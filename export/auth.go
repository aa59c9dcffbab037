/*
Copyright 2026 MindFlow Authors
SPDX-License-Identifier: Apache-2.0
*/

package export

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/oauth2"
)

// TokenProvider yields an OAuth token source for the Google Workspace APIs.
// Acquisition completes before any mutation request is issued.
type TokenProvider interface {
	Token(ctx context.Context) (oauth2.TokenSource, error)
}

// ConsentFunc completes the interactive leg of the authorization-code flow:
// it presents authURL to the user and returns the code they were granted.
type ConsentFunc func(ctx context.Context, authURL string) (string, error)

// OAuthProvider is a TokenProvider backed by a three-legged OAuth flow. The
// first acquisition walks the interactive consent flow; once a token is
// held, subsequent acquisitions refresh silently.
type OAuthProvider struct {
	cfg     *oauth2.Config
	consent ConsentFunc

	mu    sync.Mutex
	token *oauth2.Token
}

// NewOAuthProvider creates a provider for the given OAuth configuration.
func NewOAuthProvider(cfg *oauth2.Config, consent ConsentFunc) (*OAuthProvider, error) {
	if cfg == nil {
		return nil, errors.New("oauth config is required")
	}
	if consent == nil {
		return nil, errors.New("consent func is required")
	}
	return &OAuthProvider{cfg: cfg, consent: consent}, nil
}

// Token returns a token source, running the consent flow if no token is
// held yet. Failures wrap ErrAuthorization.
func (p *OAuthProvider) Token(ctx context.Context) (oauth2.TokenSource, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token == nil {
		url := p.cfg.AuthCodeURL("state", oauth2.AccessTypeOffline)
		code, err := p.consent(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrAuthorization, err)
		}
		tok, err := p.cfg.Exchange(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrAuthorization, err)
		}
		p.token = tok
	}
	return p.cfg.TokenSource(ctx, p.token), nil
}

// StaticToken returns a TokenProvider that always yields the given token.
// Useful for tests and for service contexts that manage tokens externally.
func StaticToken(tok *oauth2.Token) TokenProvider {
	return staticProvider{tok: tok}
}

type staticProvider struct {
	tok *oauth2.Token
}

func (s staticProvider) Token(context.Context) (oauth2.TokenSource, error) {
	return oauth2.StaticTokenSource(s.tok), nil
}
