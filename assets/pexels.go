/*
Copyright 2026 MindFlow Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package assets resolves short text queries to supporting media: stock
// photos through the Pexels search API and related videos through the
// YouTube search API. Resolution is strictly best-effort: resolvers never
// return an error, only an empty result, and perform no caching or retries.
package assets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"
)

const defaultBaseURL = "https://api.pexels.com/v1"

// Image is a resolved photo with its attribution line.
type Image struct {
	URL         string
	Attribution string
}

// Resolver looks up landscape-oriented photos for slide and article visuals.
type Resolver struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Resolver.
type Option func(*Resolver) error

// WithBaseURL overrides the API endpoint, primarily for tests.
func WithBaseURL(u string) Option {
	return func(r *Resolver) error {
		if u == "" {
			return errors.New("base URL cannot be empty")
		}
		r.baseURL = u
		return nil
	}
}

// WithHTTPClient sets the HTTP client used for lookups.
func WithHTTPClient(hc *http.Client) Option {
	return func(r *Resolver) error {
		if hc == nil {
			return errors.New("http client cannot be nil")
		}
		r.httpClient = hc
		return nil
	}
}

// NewResolver creates a resolver with the given API key.
func NewResolver(apiKey string, options ...Option) (*Resolver, error) {
	if apiKey == "" {
		return nil, errors.New("API key is required")
	}
	r := &Resolver{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range options {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return r, nil
}

type envCfg struct {
	APIKey string `env:"PEXELS_API_KEY,required"`
}

// NewResolverFromEnv creates a resolver keyed from PEXELS_API_KEY.
func NewResolverFromEnv(ctx context.Context, options ...Option) (*Resolver, error) {
	var cfg envCfg
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return NewResolver(cfg.APIKey, options...)
}

// searchResponse mirrors the subset of the Pexels payload we consume.
type searchResponse struct {
	Photos []struct {
		Photographer string `json:"photographer"`
		Src          struct {
			Large2x string `json:"large2x"`
		} `json:"src"`
	} `json:"photos"`
}

// Resolve looks up one landscape photo for the query. Returns ok=false on
// any transport or decode failure and on an empty result set; repeat calls
// for the same query re-issue the lookup.
func (r *Resolver) Resolve(ctx context.Context, query string) (Image, bool) {
	log := clog.FromContext(ctx)

	u := fmt.Sprintf("%s/search?query=%s&per_page=1&orientation=landscape", r.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Image{}, false
	}
	req.Header.Set("Authorization", r.apiKey)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		log.With("query", query).With("error", err).Debug("Image lookup failed")
		return Image{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.With("query", query).With("status", resp.StatusCode).Debug("Image lookup returned non-OK status")
		return Image{}, false
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.With("query", query).With("error", err).Debug("Image lookup payload unparseable")
		return Image{}, false
	}
	if len(payload.Photos) == 0 || payload.Photos[0].Src.Large2x == "" {
		return Image{}, false
	}

	return Image{
		URL:         payload.Photos[0].Src.Large2x,
		Attribution: payload.Photos[0].Photographer,
	}, true
}
