/*
Copyright 2026 MindFlow Authors
SPDX-License-Identifier: Apache-2.0
*/

package generate

import (
	"context"

	"github.com/chainguard-dev/clog"
	"google.golang.org/genai"

	"mindflow.dev/mindflow/result"
	"mindflow.dev/mindflow/schemas"
)

// regenerateFallback is returned by RegenerateSummary when the backend
// fails; the caller displays it in place of a fresh summary.
const regenerateFallback = "Failed to regenerate summary."

// RegenerateSummary produces a fresh 1-4 sentence summary for the topic.
// It never returns an error: any failure (missing key, transport, empty
// response) degrades to a fallback string, since this backs a best-effort
// refresh button.
func (c *Client) RegenerateSummary(ctx context.Context, topic string) string {
	log := clog.FromContext(ctx)

	key, err := c.creds.APIKey(ctx)
	if err != nil || key == "" {
		log.Warn("Cannot regenerate summary without an API key")
		return regenerateFallback
	}

	bound, err := regeneratePrompt.BindString("topic", topic)
	if err != nil {
		return regenerateFallback
	}
	instruction, err := bound.Build()
	if err != nil {
		return regenerateFallback
	}

	gen, err := c.factory(ctx, key)
	if err != nil {
		log.With("error", err).Warn("Failed to create backend client for summary regeneration")
		return regenerateFallback
	}

	resp, err := gen.GenerateContent(ctx, c.model, genai.Text(instruction), &genai.GenerateContentConfig{})
	if err != nil {
		log.With("error", err).Warn("Summary regeneration failed")
		return regenerateFallback
	}
	if text := resp.Text(); text != "" {
		return text
	}
	return regenerateFallback
}

// Suggest returns short completions for a partially typed query. It backs
// an interactive autocomplete, so every failure path (missing credential,
// transport error, malformed payload) returns nil rather than an error.
func (c *Client) Suggest(ctx context.Context, query string) []string {
	log := clog.FromContext(ctx)

	key, err := c.creds.APIKey(ctx)
	if err != nil || key == "" {
		return nil
	}

	bound, err := suggestPrompt.BindString("query", query)
	if err != nil {
		return nil
	}
	instruction, err := bound.Build()
	if err != nil {
		return nil
	}

	gen, err := c.factory(ctx, key)
	if err != nil {
		log.With("error", err).Debug("Failed to create backend client for suggestions")
		return nil
	}

	resp, err := gen.GenerateContent(ctx, c.suggestionModel, genai.Text(instruction), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schemas.Suggestions(),
		MaxOutputTokens:  suggestionMaxTokens,
	})
	if err != nil {
		log.With("error", err).Debug("Suggestion request failed")
		return nil
	}

	suggestions, err := result.Extract[[]string](resp.Text())
	if err != nil {
		log.With("error", err).Debug("Suggestion payload unparseable")
		return nil
	}
	return suggestions
}
