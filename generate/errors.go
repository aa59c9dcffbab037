/*
Copyright 2026 MindFlow Authors
SPDX-License-Identifier: Apache-2.0
*/

package generate

import "errors"

// Sentinel errors surfaced by the generation path. Callers match them with
// errors.Is; remediation differs per kind (supply a key, fix the input, or
// retry the whole request manually).
var (
	// ErrMissingCredential means no API key was available. Raised before
	// any network call is attempted.
	ErrMissingCredential = errors.New("API key is missing; add one in settings")

	// ErrInvalidInput means the user-supplied text was empty or blank.
	ErrInvalidInput = errors.New("input text is empty")

	// ErrEmptyResponse means the generation endpoint returned no text.
	ErrEmptyResponse = errors.New("no content generated")

	// ErrMalformedResponse means the response text could not be parsed as
	// JSON matching the requested contract. Not retried automatically.
	ErrMalformedResponse = errors.New("generated content could not be parsed")
)
