/*
Copyright 2026 MindFlow Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package content defines the typed study-material shapes produced by a
// generation request: study guides, teacher worksheets, grammar analyses,
// and search results. Exactly one shape is active per request; the Variant
// type carries the generation mode as the discriminant.
package content

import "fmt"

// Mode identifies one of the four mutually exclusive generation intents.
type Mode string

const (
	// ModeStudent produces a full study guide (summary, concepts,
	// flashcards, quiz, article, slide deck).
	ModeStudent Mode = "student"
	// ModeTeacher produces a printable worksheet with a grading rubric.
	ModeTeacher Mode = "teacher"
	// ModeGrammar produces a segment-by-segment grammar analysis.
	ModeGrammar Mode = "grammar"
	// ModeSearch produces a sourced summary with a generated article.
	ModeSearch Mode = "search"
)

// Modes lists all generation modes in a stable order.
var Modes = []Mode{ModeStudent, ModeTeacher, ModeGrammar, ModeSearch}

// Valid reports whether m is one of the four known modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeStudent, ModeTeacher, ModeGrammar, ModeSearch:
		return true
	}
	return false
}

// Flashcard is a single front/back study card.
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// QuizQuestion is a multiple-choice question with one correct option.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Correct reports whether the option at index i is the correct answer.
func (q QuizQuestion) Correct(i int) bool {
	return i == q.CorrectAnswer
}

// KeyConcept is a titled explanation of one core idea of the topic.
type KeyConcept struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ChartData backs a chart-typed site section. Labels and Values are
// parallel slices; Label names the measured metric.
type ChartData struct {
	Label  string    `json:"label"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// SectionLayout positions a site section's media relative to its text.
type SectionLayout string

// Site section layouts.
const (
	LayoutLeft  SectionLayout = "left"
	LayoutRight SectionLayout = "right"
)

// MediaType selects the media accompanying a site section.
type MediaType string

// Site section media kinds.
const (
	MediaImage MediaType = "image"
	MediaChart MediaType = "chart"
	MediaNone  MediaType = "none"
)

// SiteSection is one block of a generated web-style article.
type SiteSection struct {
	Title            string        `json:"title"`
	Content          string        `json:"content"`
	Layout           SectionLayout `json:"layout"`
	MediaType        MediaType     `json:"mediaType"`
	MediaDescription string        `json:"mediaDescription,omitempty"`
	ImageSearchQuery string        `json:"imageSearchQuery,omitempty"`
	ChartData        *ChartData    `json:"chartData,omitempty"`
}

// WebsiteContent is a generated deep-dive article with a hero header.
type WebsiteContent struct {
	HeroTitle    string        `json:"heroTitle"`
	HeroSubtitle string        `json:"heroSubtitle"`
	Sections     []SiteSection `json:"sections"`
}

// SlideLayout positions a slide's visual relative to its text.
type SlideLayout string

// Slide layouts.
const (
	SlideImageRight SlideLayout = "image-right"
	SlideImageLeft  SlideLayout = "image-left"
	SlideCenter     SlideLayout = "center"
)

// Slide is one page of a generated presentation deck.
type Slide struct {
	Title       string      `json:"title"`
	Bullets     []string    `json:"bullets"`
	VisualQuery string      `json:"visualQuery"`
	Layout      SlideLayout `json:"layout"`
}

// StudyGuide is the student-mode payload.
type StudyGuide struct {
	Topic          string         `json:"topic"`
	Summary        string         `json:"summary"`
	KeyConcepts    []KeyConcept   `json:"keyConcepts"`
	Flashcards     []Flashcard    `json:"flashcards"`
	Quiz           []QuizQuestion `json:"quiz"`
	WebsiteContent WebsiteContent `json:"websiteContent"`
	Slides         []Slide        `json:"slides"`
}

// SectionType is the question format of a worksheet section.
type SectionType string

// Worksheet section formats.
const (
	SectionMultipleChoice SectionType = "multiple-choice"
	SectionShortAnswer    SectionType = "short-answer"
	SectionEssay          SectionType = "essay"
	SectionMatching       SectionType = "matching"
	SectionActivity       SectionType = "activity"
	SectionFillInTheBlank SectionType = "fill-in-the-blank"
	SectionTrueFalse      SectionType = "true-false"
	SectionSequencing     SectionType = "sequencing"
)

// SectionTypes lists every worksheet section format.
var SectionTypes = []SectionType{
	SectionMultipleChoice,
	SectionShortAnswer,
	SectionEssay,
	SectionMatching,
	SectionActivity,
	SectionFillInTheBlank,
	SectionTrueFalse,
	SectionSequencing,
}

// Valid reports whether t is one of the eight known section formats.
func (t SectionType) Valid() bool {
	for _, known := range SectionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// WorksheetSection groups questions of a single format.
type WorksheetSection struct {
	Title   string      `json:"title"`
	Type    SectionType `json:"type"`
	Content []string    `json:"content"`
}

// RubricItem is one grading criterion with a point value.
type RubricItem struct {
	Criteria    string `json:"criteria"`
	Points      int    `json:"points"`
	Description string `json:"description"`
}

// TeacherContent is the teacher-mode payload.
type TeacherContent struct {
	Topic       string             `json:"topic"`
	GradeLevel  string             `json:"gradeLevel"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Sections    []WorksheetSection `json:"sections"`
	Rubric      []RubricItem       `json:"rubric"`
}

// SearchSource is one citation backing a search summary.
type SearchSource struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// SearchResult is the search-mode payload.
type SearchResult struct {
	Summary          string         `json:"summary"`
	Sources          []SearchSource `json:"sources"`
	RelatedQuestions []string       `json:"relatedQuestions"`
	WebsiteContent   WebsiteContent `json:"websiteContent"`
}

// WithSummary returns a copy of r with the summary wholesale-replaced.
// This is the only mutation a SearchResult supports after creation.
func (r SearchResult) WithSummary(summary string) SearchResult {
	r.Summary = summary
	return r
}

// Variant is the tagged union returned by a generation request. Mode is the
// discriminant; exactly one member pointer is non-nil.
type Variant struct {
	Mode Mode

	StudyGuide *StudyGuide
	Teacher    *TeacherContent
	Grammar    *GrammarAnalysis
	Search     *SearchResult
}

// Validate checks that the discriminant is a known mode and that exactly the
// member selected by it is populated.
func (v *Variant) Validate() error {
	if !v.Mode.Valid() {
		return fmt.Errorf("unknown mode %q", v.Mode)
	}
	populated := 0
	for _, set := range []bool{
		v.StudyGuide != nil,
		v.Teacher != nil,
		v.Grammar != nil,
		v.Search != nil,
	} {
		if set {
			populated++
		}
	}
	if populated != 1 {
		return fmt.Errorf("variant must have exactly one populated member, got %d", populated)
	}
	var want bool
	switch v.Mode {
	case ModeStudent:
		want = v.StudyGuide != nil
	case ModeTeacher:
		want = v.Teacher != nil
	case ModeGrammar:
		want = v.Grammar != nil
	case ModeSearch:
		want = v.Search != nil
	}
	if !want {
		return fmt.Errorf("populated member does not match mode %q", v.Mode)
	}
	return nil
}
