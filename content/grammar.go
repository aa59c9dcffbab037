/*
Copyright 2026 MindFlow Authors
SPDX-License-Identifier: Apache-2.0
*/

package content

import (
	"strings"

	"github.com/samber/lo"
	"github.com/segmentio/ksuid"
)

// SegmentType classifies a span of analyzed text.
type SegmentType string

// Grammar segment kinds.
const (
	// SegmentText is an unchanged span with no issue.
	SegmentText SegmentType = "text"
	// SegmentError is a grammar, spelling, or punctuation mistake.
	SegmentError SegmentType = "error"
	// SegmentSuggestion is a stylistic improvement opportunity.
	SegmentSuggestion SegmentType = "suggestion"
)

// GrammarSegment is a contiguous span of the analyzed input. Replacement and
// Explanation are populated only for error and suggestion segments.
type GrammarSegment struct {
	ID          string      `json:"id"`
	Text        string      `json:"text"`
	Type        SegmentType `json:"type"`
	Replacement string      `json:"replacement,omitempty"`
	Explanation string      `json:"explanation,omitempty"`
}

// Flagged reports whether the segment carries a correction or suggestion.
func (s GrammarSegment) Flagged() bool {
	return s.Type == SegmentError || s.Type == SegmentSuggestion
}

// GrammarAnalysis is the grammar-mode payload: the complete input broken
// into ordered segments, plus an overall style summary.
//
// Invariant: concatenating segment text in order reconstructs the analyzed
// input. Accept preserves the invariant against the corrected text (the
// accepted replacement becomes the segment's text).
type GrammarAnalysis struct {
	Summary  string           `json:"summary"`
	Segments []GrammarSegment `json:"segments"`
}

// Reconstruct returns the in-order concatenation of all segment text.
func (a *GrammarAnalysis) Reconstruct() string {
	var sb strings.Builder
	for _, seg := range a.Segments {
		sb.WriteString(seg.Text)
	}
	return sb.String()
}

// IssueCount returns the number of segments still flagged as an error or
// suggestion.
func (a *GrammarAnalysis) IssueCount() int {
	return lo.CountBy(a.Segments, GrammarSegment.Flagged)
}

// Accept applies the correction for the segment with the given id: its text
// becomes the replacement and the segment collapses to plain text. Calling
// Accept on a segment already collapsed to plain text is a no-op.
func (a *GrammarAnalysis) Accept(id string) {
	for i, seg := range a.Segments {
		if seg.ID != id || !seg.Flagged() {
			continue
		}
		a.Segments[i] = GrammarSegment{
			ID:   seg.ID,
			Text: seg.Replacement,
			Type: SegmentText,
		}
	}
}

// Ignore dismisses the finding for the segment with the given id, keeping
// the original text. A no-op for segments already of type text.
func (a *GrammarAnalysis) Ignore(id string) {
	for i, seg := range a.Segments {
		if seg.ID != id || !seg.Flagged() {
			continue
		}
		a.Segments[i] = GrammarSegment{
			ID:   seg.ID,
			Text: seg.Text,
			Type: SegmentText,
		}
	}
}

// AcceptAll applies every outstanding correction and suggestion.
func (a *GrammarAnalysis) AcceptAll() {
	for _, seg := range a.Segments {
		if seg.Flagged() {
			a.Accept(seg.ID)
		}
	}
}

// Snapshot returns a deep copy of the segment list, suitable for an undo
// history kept by the caller.
func (a *GrammarAnalysis) Snapshot() []GrammarSegment {
	return lo.Map(a.Segments, func(seg GrammarSegment, _ int) GrammarSegment {
		return seg
	})
}

// Restore replaces the segment list with a previously taken snapshot.
func (a *GrammarAnalysis) Restore(segments []GrammarSegment) {
	a.Segments = lo.Map(segments, func(seg GrammarSegment, _ int) GrammarSegment {
		return seg
	})
}

// EnsureSegmentIDs assigns fresh ids to segments the model left without one,
// and re-keys duplicates so that ids are unique within the analysis. Accept
// and Ignore are keyed on id, so collisions would apply one action to
// multiple segments.
func (a *GrammarAnalysis) EnsureSegmentIDs() {
	seen := make(map[string]struct{}, len(a.Segments))
	for i, seg := range a.Segments {
		if seg.ID == "" {
			a.Segments[i].ID = ksuid.New().String()
		} else if _, dup := seen[seg.ID]; dup {
			a.Segments[i].ID = ksuid.New().String()
		}
		seen[a.Segments[i].ID] = struct{}{}
	}
}
