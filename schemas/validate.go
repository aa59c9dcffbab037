/*
Copyright 2026 MindFlow Authors
SPDX-License-Identifier: Apache-2.0
*/

package schemas

import (
	"errors"
	"fmt"

	"mindflow.dev/mindflow/content"
)

// ErrSchemaViolation wraps every failure reported by Validate, so callers
// can distinguish structural drift from transport or parse failures.
var ErrSchemaViolation = errors.New("response violates schema contract")

// Validate deep-checks a parsed variant against the contract For(mode)
// promised: enum membership, index ranges, conditionally required fields,
// and the chart-data length invariant. The generation endpoint is trusted to
// enforce the declared shape, but parseable-yet-drifted payloads (wrong enum
// value, out-of-range answer index) would otherwise surface only at export
// or render time.
func Validate(v *content.Variant) error {
	if err := v.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrSchemaViolation, err)
	}
	var err error
	switch v.Mode {
	case content.ModeStudent:
		err = validateStudyGuide(v.StudyGuide)
	case content.ModeTeacher:
		err = validateTeacher(v.Teacher)
	case content.ModeGrammar:
		err = validateGrammar(v.Grammar)
	case content.ModeSearch:
		err = validateSearch(v.Search)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSchemaViolation, err)
	}
	return nil
}

func validateStudyGuide(g *content.StudyGuide) error {
	if g.Topic == "" {
		return errors.New("study guide missing topic")
	}
	for i, q := range g.Quiz {
		if len(q.Options) < 2 {
			return fmt.Errorf("quiz question %d has %d options, need at least 2", i, len(q.Options))
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return fmt.Errorf("quiz question %d correctAnswer %d out of range [0,%d)", i, q.CorrectAnswer, len(q.Options))
		}
	}
	for i, s := range g.Slides {
		switch s.Layout {
		case content.SlideImageRight, content.SlideImageLeft, content.SlideCenter:
		default:
			return fmt.Errorf("slide %d has unknown layout %q", i, s.Layout)
		}
	}
	return validateWebsiteContent(g.WebsiteContent)
}

func validateTeacher(tc *content.TeacherContent) error {
	if tc.Title == "" {
		return errors.New("worksheet missing title")
	}
	for i, s := range tc.Sections {
		if !s.Type.Valid() {
			return fmt.Errorf("worksheet section %d has unknown type %q", i, s.Type)
		}
	}
	for i, r := range tc.Rubric {
		if r.Points < 0 {
			return fmt.Errorf("rubric item %d has negative points %d", i, r.Points)
		}
	}
	return nil
}

func validateGrammar(a *content.GrammarAnalysis) error {
	for i, seg := range a.Segments {
		switch seg.Type {
		case content.SegmentText:
		case content.SegmentError, content.SegmentSuggestion:
			if seg.Replacement == "" {
				return fmt.Errorf("segment %d (%s) missing replacement", i, seg.Type)
			}
			if seg.Explanation == "" {
				return fmt.Errorf("segment %d (%s) missing explanation", i, seg.Type)
			}
		default:
			return fmt.Errorf("segment %d has unknown type %q", i, seg.Type)
		}
	}
	return nil
}

func validateSearch(r *content.SearchResult) error {
	if r.Summary == "" {
		return errors.New("search result missing summary")
	}
	for i, s := range r.Sources {
		if s.URL == "" {
			return fmt.Errorf("source %d missing url", i)
		}
	}
	return validateWebsiteContent(r.WebsiteContent)
}

func validateWebsiteContent(w content.WebsiteContent) error {
	for i, s := range w.Sections {
		switch s.Layout {
		case content.LayoutLeft, content.LayoutRight:
		default:
			return fmt.Errorf("site section %d has unknown layout %q", i, s.Layout)
		}
		switch s.MediaType {
		case content.MediaImage, content.MediaChart, content.MediaNone:
		default:
			return fmt.Errorf("site section %d has unknown mediaType %q", i, s.MediaType)
		}
		if !s.ChartConsistent() {
			return fmt.Errorf("site section %d chart data has %d values for %d labels",
				i, chartLen(s.ChartData, false), chartLen(s.ChartData, true))
		}
	}
	return nil
}

func chartLen(c *content.ChartData, labels bool) int {
	if c == nil {
		return 0
	}
	if labels {
		return len(c.Labels)
	}
	return len(c.Values)
}
