/*
Copyright 2026 MindFlow Authors
SPDX-License-Identifier: Apache-2.0
*/

package schemas

import (
	"errors"
	"testing"

	"mindflow.dev/mindflow/content"
)

func validStudyGuide() *content.StudyGuide {
	return &content.StudyGuide{
		Topic:   "Photosynthesis",
		Summary: "How plants turn light into energy.",
		Quiz: []content.QuizQuestion{{
			Question:      "Primary pigment?",
			Options:       []string{"Chlorophyll", "Carotene"},
			CorrectAnswer: 0,
			Explanation:   "Chlorophyll absorbs red and blue light.",
		}},
		WebsiteContent: content.WebsiteContent{
			HeroTitle: "Photosynthesis",
			Sections: []content.SiteSection{{
				Title:     "Light reactions",
				Content:   "...",
				Layout:    content.LayoutLeft,
				MediaType: content.MediaNone,
			}},
		},
		Slides: []content.Slide{{Title: "Overview", Layout: content.SlideCenter}},
	}
}

func TestValidateStudyGuide(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(g *content.StudyGuide)
		wantErr bool
	}{{
		name:   "valid guide",
		mutate: func(*content.StudyGuide) {},
	}, {
		name:    "answer index out of range",
		mutate:  func(g *content.StudyGuide) { g.Quiz[0].CorrectAnswer = 5 },
		wantErr: true,
	}, {
		name:    "negative answer index",
		mutate:  func(g *content.StudyGuide) { g.Quiz[0].CorrectAnswer = -1 },
		wantErr: true,
	}, {
		name:    "single option quiz",
		mutate:  func(g *content.StudyGuide) { g.Quiz[0].Options = []string{"only"} },
		wantErr: true,
	}, {
		name:    "unknown slide layout",
		mutate:  func(g *content.StudyGuide) { g.Slides[0].Layout = "fullscreen" },
		wantErr: true,
	}, {
		name: "chart length mismatch",
		mutate: func(g *content.StudyGuide) {
			g.WebsiteContent.Sections[0].MediaType = content.MediaChart
			g.WebsiteContent.Sections[0].ChartData = &content.ChartData{
				Labels: []string{"a", "b"},
				Values: []float64{1},
			}
		},
		wantErr: true,
	}, {
		name: "consistent chart passes",
		mutate: func(g *content.StudyGuide) {
			g.WebsiteContent.Sections[0].MediaType = content.MediaChart
			g.WebsiteContent.Sections[0].ChartData = &content.ChartData{
				Labels: []string{"a", "b"},
				Values: []float64{1, 2},
			}
		},
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := validStudyGuide()
			tt.mutate(g)
			err := Validate(&content.Variant{Mode: content.ModeStudent, StudyGuide: g})
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrSchemaViolation) {
				t.Errorf("Validate() error %v should wrap ErrSchemaViolation", err)
			}
		})
	}
}

func TestValidateTeacher(t *testing.T) {
	tc := &content.TeacherContent{
		Title: "Newton's Laws Worksheet",
		Sections: []content.WorksheetSection{
			{Title: "Recall", Type: content.SectionMultipleChoice, Content: []string{"Q1"}},
		},
		Rubric: []content.RubricItem{{Criteria: "Accuracy", Points: 10}},
	}
	if err := Validate(&content.Variant{Mode: content.ModeTeacher, Teacher: tc}); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}

	tc.Sections[0].Type = "oral-exam"
	if err := Validate(&content.Variant{Mode: content.ModeTeacher, Teacher: tc}); err == nil {
		t.Error("Validate() accepted an unknown section type")
	}

	tc.Sections[0].Type = content.SectionEssay
	tc.Rubric[0].Points = -1
	if err := Validate(&content.Variant{Mode: content.ModeTeacher, Teacher: tc}); err == nil {
		t.Error("Validate() accepted negative rubric points")
	}
}

func TestValidateGrammar(t *testing.T) {
	a := &content.GrammarAnalysis{Segments: []content.GrammarSegment{
		{ID: "1", Text: "fine ", Type: content.SegmentText},
		{ID: "2", Text: "wrod", Type: content.SegmentError, Replacement: "word", Explanation: "spelling"},
	}}
	if err := Validate(&content.Variant{Mode: content.ModeGrammar, Grammar: a}); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}

	a.Segments[1].Replacement = ""
	if err := Validate(&content.Variant{Mode: content.ModeGrammar, Grammar: a}); err == nil {
		t.Error("Validate() accepted a flagged segment without replacement")
	}
}

func TestValidateSearch(t *testing.T) {
	r := &content.SearchResult{
		Summary: "A summary.",
		Sources: []content.SearchSource{{Title: "t", URL: "https://example.com", Snippet: "s"}},
		WebsiteContent: content.WebsiteContent{Sections: []content.SiteSection{{
			Layout: content.LayoutRight, MediaType: content.MediaNone,
		}}},
	}
	if err := Validate(&content.Variant{Mode: content.ModeSearch, Search: r}); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}

	r.Sources[0].URL = ""
	if err := Validate(&content.Variant{Mode: content.ModeSearch, Search: r}); err == nil {
		t.Error("Validate() accepted a source without url")
	}
}
