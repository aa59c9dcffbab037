/*
Copyright 2026 MindFlow Authors
SPDX-License-Identifier: Apache-2.0
*/

package assets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newServerVideoResolver(t *testing.T, handler http.HandlerFunc) *VideoResolver {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	r, err := NewVideoResolver("yt-key", WithVideoBaseURL(srv.URL), WithVideoHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("NewVideoResolver() error: %v", err)
	}
	return r
}

func TestSearchVideos(t *testing.T) {
	var gotQuery url.Values
	r := newServerVideoResolver(t, func(w http.ResponseWriter, req *http.Request) {
		gotQuery = req.URL.Query()
		w.Write([]byte(`{"items": [
			{
				"id": {"videoId": "abc123"},
				"snippet": {
					"title": "Photosynthesis Explained",
					"thumbnails": {"high": {"url": "https://i.ytimg.com/hi.jpg"}, "medium": {"url": "https://i.ytimg.com/med.jpg"}},
					"channelTitle": "Science Hub",
					"description": "A walkthrough.",
					"publishedAt": "2024-03-01T12:00:00Z"
				}
			},
			{
				"id": {"videoId": "def456"},
				"snippet": {
					"title": "Chloroplasts",
					"thumbnails": {"medium": {"url": "https://i.ytimg.com/med2.jpg"}},
					"channelTitle": "Bio Basics",
					"description": "Short intro.",
					"publishedAt": "2023-11-20T08:30:00Z"
				}
			}
		]}`))
	})

	got := r.Search(context.Background(), "photosynthesis")
	want := []Video{{
		ID:           "abc123",
		Title:        "Photosynthesis Explained",
		Thumbnail:    "https://i.ytimg.com/hi.jpg",
		ChannelTitle: "Science Hub",
		Description:  "A walkthrough.",
		PublishedAt:  "2024-03-01T12:00:00Z",
	}, {
		ID:           "def456",
		Title:        "Chloroplasts",
		Thumbnail:    "https://i.ytimg.com/med2.jpg", // falls back to medium
		ChannelTitle: "Bio Basics",
		Description:  "Short intro.",
		PublishedAt:  "2023-11-20T08:30:00Z",
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Search() mismatch (-want +got):\n%s", diff)
	}

	if gotQuery.Get("part") != "snippet" || gotQuery.Get("type") != "video" {
		t.Errorf("part=%q type=%q, want snippet/video", gotQuery.Get("part"), gotQuery.Get("type"))
	}
	if gotQuery.Get("maxResults") != "6" {
		t.Errorf("maxResults = %q, want 6", gotQuery.Get("maxResults"))
	}
	if gotQuery.Get("q") != "photosynthesis" {
		t.Errorf("q = %q", gotQuery.Get("q"))
	}
	if gotQuery.Get("key") != "yt-key" {
		t.Errorf("key = %q", gotQuery.Get("key"))
	}
}

func TestSearchVideosNeverErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{{
		name: "empty result set",
		handler: func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"items": []}`))
		},
	}, {
		name: "quota exceeded",
		handler: func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"error": {"code": 403}}`, http.StatusForbidden)
		},
	}, {
		name: "garbage payload",
		handler: func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`<html>service unavailable</html>`))
		},
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newServerVideoResolver(t, tt.handler)
			if got := r.Search(context.Background(), "q"); got != nil {
				t.Errorf("Search() = %v, want nil", got)
			}
		})
	}
}

func TestSearchVideosTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	r, err := NewVideoResolver("k", WithVideoBaseURL(endpoint))
	if err != nil {
		t.Fatalf("NewVideoResolver() error: %v", err)
	}
	if got := r.Search(context.Background(), "q"); got != nil {
		t.Errorf("Search() = %v on dead endpoint, want nil", got)
	}
}

func TestNewVideoResolverRequiresKey(t *testing.T) {
	if _, err := NewVideoResolver(""); err == nil {
		t.Error("NewVideoResolver(\"\") should fail")
	}
}
