/*
Copyright 2026 MindFlow Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package result parses model response text into typed values. Even with a
// JSON response MIME type requested, models occasionally wrap payloads in
// markdown code fences; Extract strips those before unmarshaling.
package result

import (
	"encoding/json"
	"strings"
)

// ExtractJSON returns the JSON content of a model response, unwrapping a
// leading ```json fenced block when present. Without a fence the trimmed
// input is returned as-is.
func ExtractJSON(responseText string) string {
	if body, ok := fencedBlock(responseText); ok {
		return body
	}

	trimmed := strings.TrimSpace(responseText)
	// Inline fences (```json{...}``` on a single line) are common enough
	// to handle without the line-oriented scan.
	if strings.HasPrefix(trimmed, "```json") && strings.HasSuffix(trimmed, "```") {
		trimmed = strings.TrimSuffix(strings.TrimPrefix(trimmed, "```json"), "```")
	} else {
		trimmed = strings.TrimSuffix(strings.TrimPrefix(trimmed, "```"), "```")
	}
	return strings.TrimSpace(trimmed)
}

// fencedBlock scans for a ```json fence on its own line and returns the
// content up to the closing fence (or end of input when unclosed).
func fencedBlock(text string) (string, bool) {
	var body []string
	open := false
	for line := range strings.Lines(text) {
		line = strings.TrimRight(line, "\r\n")
		if !open {
			if line == "```json" {
				open = true
			}
			continue
		}
		if line == "```" {
			break
		}
		body = append(body, line)
	}
	if !open {
		return "", false
	}
	return strings.TrimSpace(strings.Join(body, "\n")), true
}

// Extract unwraps any code fencing and unmarshals the JSON content into T.
func Extract[T any](responseText string) (T, error) {
	var out T
	if err := json.Unmarshal([]byte(ExtractJSON(responseText)), &out); err != nil {
		return out, err
	}
	return out, nil
}
