/*
Copyright 2026 MindFlow Authors
SPDX-License-Identifier: Apache-2.0
*/

package content

import "testing"

func TestModeValid(t *testing.T) {
	for _, m := range Modes {
		if !m.Valid() {
			t.Errorf("Mode %q should be valid", m)
		}
	}
	for _, m := range []Mode{"", "students", "SEARCH"} {
		if m.Valid() {
			t.Errorf("Mode %q should be invalid", m)
		}
	}
}

func TestVariantValidate(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		wantErr bool
	}{{
		name:    "study guide matches student mode",
		variant: Variant{Mode: ModeStudent, StudyGuide: &StudyGuide{}},
	}, {
		name:    "teacher content matches teacher mode",
		variant: Variant{Mode: ModeTeacher, Teacher: &TeacherContent{}},
	}, {
		name:    "grammar matches grammar mode",
		variant: Variant{Mode: ModeGrammar, Grammar: &GrammarAnalysis{}},
	}, {
		name:    "search matches search mode",
		variant: Variant{Mode: ModeSearch, Search: &SearchResult{}},
	}, {
		name:    "unknown mode",
		variant: Variant{Mode: "essay", StudyGuide: &StudyGuide{}},
		wantErr: true,
	}, {
		name:    "no member populated",
		variant: Variant{Mode: ModeStudent},
		wantErr: true,
	}, {
		name:    "two members populated",
		variant: Variant{Mode: ModeStudent, StudyGuide: &StudyGuide{}, Search: &SearchResult{}},
		wantErr: true,
	}, {
		name:    "member does not match mode",
		variant: Variant{Mode: ModeTeacher, StudyGuide: &StudyGuide{}},
		wantErr: true,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.variant.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestQuizQuestionCorrect(t *testing.T) {
	q := QuizQuestion{
		Question:      "2 + 2?",
		Options:       []string{"3", "4", "5"},
		CorrectAnswer: 1,
	}
	if !q.Correct(1) {
		t.Error("Correct(1) = false, want true")
	}
	if q.Correct(0) || q.Correct(2) {
		t.Error("wrong option reported correct")
	}
}

func TestSectionTypeValid(t *testing.T) {
	if got := len(SectionTypes); got != 8 {
		t.Fatalf("expected 8 worksheet section formats, got %d", got)
	}
	for _, st := range SectionTypes {
		if !st.Valid() {
			t.Errorf("SectionType %q should be valid", st)
		}
	}
	if SectionType("open-ended").Valid() {
		t.Error("unknown section type reported valid")
	}
}

func TestSearchResultWithSummary(t *testing.T) {
	orig := SearchResult{Summary: "old", RelatedQuestions: []string{"q"}}
	updated := orig.WithSummary("new")
	if updated.Summary != "new" {
		t.Errorf("WithSummary() = %q, want %q", updated.Summary, "new")
	}
	if orig.Summary != "old" {
		t.Error("WithSummary mutated the receiver")
	}
	if len(updated.RelatedQuestions) != 1 {
		t.Error("WithSummary dropped other fields")
	}
}
