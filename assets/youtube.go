/*
Copyright 2026 MindFlow Authors
SPDX-License-Identifier: Apache-2.0
*/

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

const (
	defaultVideoBaseURL = "https://www.googleapis.com/youtube/v3"
	videoResultCount    = 6
)

// Video is one related-video result for a study topic.
type Video struct {
	ID           string
	Title        string
	Thumbnail    string
	ChannelTitle string
	Description  string
	PublishedAt  string
}

// VideoResolver looks up related videos for a topic through the YouTube
// search API. Like Resolver it is strictly best-effort: lookups never
// return an error, only an empty result.
type VideoResolver struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// VideoOption configures a VideoResolver.
type VideoOption func(*VideoResolver) error

// WithVideoBaseURL overrides the API endpoint, primarily for tests.
func WithVideoBaseURL(u string) VideoOption {
	return func(r *VideoResolver) error {
		if u == "" {
			return errors.New("base URL cannot be empty")
		}
		r.baseURL = u
		return nil
	}
}

// WithVideoHTTPClient sets the HTTP client used for lookups.
func WithVideoHTTPClient(hc *http.Client) VideoOption {
	return func(r *VideoResolver) error {
		if hc == nil {
			return errors.New("http client cannot be nil")
		}
		r.httpClient = hc
		return nil
	}
}

// NewVideoResolver creates a resolver with the given API key.
func NewVideoResolver(apiKey string, options ...VideoOption) (*VideoResolver, error) {
	if apiKey == "" {
		return nil, errors.New("API key is required")
	}
	r := &VideoResolver{
		apiKey:     apiKey,
		baseURL:    defaultVideoBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range options {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return r, nil
}

type videoEnvCfg struct {
	APIKey string `env:"YOUTUBE_API_KEY,required"`
}

// NewVideoResolverFromEnv creates a resolver keyed from YOUTUBE_API_KEY.
func NewVideoResolverFromEnv(ctx context.Context, options ...VideoOption) (*VideoResolver, error) {
	var cfg videoEnvCfg
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return NewVideoResolver(cfg.APIKey, options...)
}

// videoSearchResponse mirrors the subset of the search payload we consume.
type videoSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title      string `json:"title"`
			Thumbnails struct {
				High struct {
					URL string `json:"url"`
				} `json:"high"`
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
			} `json:"thumbnails"`
			ChannelTitle string `json:"channelTitle"`
			Description  string `json:"description"`
			PublishedAt  string `json:"publishedAt"`
		} `json:"snippet"`
	} `json:"items"`
}

// Search looks up up to six related videos for the query, preferring the
// high-resolution thumbnail and falling back to medium. Returns nil on any
// transport or decode failure; repeat calls re-issue the lookup.
func (r *VideoResolver) Search(ctx context.Context, query string) []Video {
	log := clog.FromContext(ctx)

	u := fmt.Sprintf("%s/search?part=snippet&maxResults=%d&q=%s&type=video&key=%s",
		r.baseURL, videoResultCount, url.QueryEscape(query), url.QueryEscape(r.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		log.With("query", query).With("error", err).Debug("Video lookup failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.With("query", query).With("status", resp.StatusCode).Debug("Video lookup returned non-OK status")
		return nil
	}

	var payload videoSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.With("query", query).With("error", err).Debug("Video lookup payload unparseable")
		return nil
	}

	videos := make([]Video, 0, len(payload.Items))
	for _, item := range payload.Items {
		thumbnail := item.Snippet.Thumbnails.High.URL
		if thumbnail == "" {
			thumbnail = item.Snippet.Thumbnails.Medium.URL
		}
		videos = append(videos, Video{
			ID:           item.ID.VideoID,
			Title:        item.Snippet.Title,
			Thumbnail:    thumbnail,
			ChannelTitle: item.Snippet.ChannelTitle,
			Description:  item.Snippet.Description,
			PublishedAt:  item.Snippet.PublishedAt,
		})
	}
	if len(videos) == 0 {
		return nil
	}
	return videos
}
