/*
Copyright 2026 MindFlow Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package schemas defines the structured-output contracts constraining the
// generative backend, one per generation mode. The descriptors returned by
// For are the ground truth the model is held to: every field, enum domain,
// and required set mirrors the types in the content package.
package schemas

import (
	"google.golang.org/genai"

	"mindflow.dev/mindflow/content"
)

// For returns the response schema for the given mode. It is total over the
// four modes; unknown modes fall back to the study-guide schema, matching
// the default branch of mode selection elsewhere.
func For(mode content.Mode) *genai.Schema {
	switch mode {
	case content.ModeTeacher:
		return teacherSchema()
	case content.ModeGrammar:
		return grammarSchema()
	case content.ModeSearch:
		return searchSchema()
	default:
		return studyGuideSchema()
	}
}

// RequiredFields returns the top-level required property names of the
// schema for the given mode.
func RequiredFields(mode content.Mode) []string {
	return For(mode).Required
}

// Suggestions returns the schema for the autosuggest endpoint: a bare array
// of strings.
func Suggestions() *genai.Schema {
	return &genai.Schema{
		Type:  genai.TypeArray,
		Items: &genai.Schema{Type: genai.TypeString},
	}
}

// websiteContentSchema is shared between the student and search contracts.
func websiteContentSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"heroTitle":    {Type: genai.TypeString},
			"heroSubtitle": {Type: genai.TypeString},
			"sections": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title":            {Type: genai.TypeString},
						"content":          {Type: genai.TypeString},
						"layout":           {Type: genai.TypeString, Enum: []string{"left", "right"}},
						"mediaType":        {Type: genai.TypeString, Enum: []string{"image", "chart", "none"}},
						"mediaDescription": {Type: genai.TypeString},
						"imageSearchQuery": {Type: genai.TypeString},
						"chartData": {
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"label":  {Type: genai.TypeString},
								"labels": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
								"values": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeNumber}},
							},
							Nullable: genai.Ptr(true),
						},
					},
					Required: []string{"title", "content", "layout", "mediaType"},
				},
			},
		},
		Required: []string{"heroTitle", "heroSubtitle", "sections"},
	}
}

func studyGuideSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"topic":   {Type: genai.TypeString},
			"summary": {Type: genai.TypeString},
			"keyConcepts": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title":       {Type: genai.TypeString},
						"description": {Type: genai.TypeString},
					},
					Required: []string{"title", "description"},
				},
			},
			"flashcards": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"front": {Type: genai.TypeString},
						"back":  {Type: genai.TypeString},
					},
					Required: []string{"front", "back"},
				},
			},
			"quiz": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"question":      {Type: genai.TypeString},
						"options":       {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
						"correctAnswer": {Type: genai.TypeInteger},
						"explanation":   {Type: genai.TypeString},
					},
					Required: []string{"question", "options", "correctAnswer", "explanation"},
				},
			},
			"websiteContent": websiteContentSchema(),
			"slides": {
				Type:        genai.TypeArray,
				Description: "A deck of 5-8 presentation slides.",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title":       {Type: genai.TypeString},
						"bullets":     {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
						"visualQuery": {Type: genai.TypeString, Description: "Search query for a background image"},
						"layout":      {Type: genai.TypeString, Enum: []string{"image-right", "image-left", "center"}},
					},
					Required: []string{"title", "bullets", "visualQuery", "layout"},
				},
			},
		},
		Required: []string{"topic", "summary", "keyConcepts", "flashcards", "quiz", "websiteContent", "slides"},
	}
}

func teacherSchema() *genai.Schema {
	sectionTypes := make([]string, 0, len(content.SectionTypes))
	for _, st := range content.SectionTypes {
		sectionTypes = append(sectionTypes, string(st))
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"topic":       {Type: genai.TypeString},
			"gradeLevel":  {Type: genai.TypeString, Description: "Target grade level (e.g., '10th Grade', 'University')"},
			"title":       {Type: genai.TypeString, Description: "Title of the worksheet"},
			"description": {Type: genai.TypeString, Description: "Introductory text or instructions"},
			"sections": {
				Type:        genai.TypeArray,
				Description: "Different sections of the worksheet/test",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title": {Type: genai.TypeString},
						"type":  {Type: genai.TypeString, Enum: sectionTypes},
						"content": {
							Type:        genai.TypeArray,
							Items:       &genai.Schema{Type: genai.TypeString},
							Description: "List of questions or items for this section.",
						},
					},
					Required: []string{"title", "type", "content"},
				},
			},
			"rubric": {
				Type:        genai.TypeArray,
				Description: "Grading rubric",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"criteria":    {Type: genai.TypeString},
						"points":      {Type: genai.TypeInteger},
						"description": {Type: genai.TypeString},
					},
					Required: []string{"criteria", "points", "description"},
				},
			},
		},
		Required: []string{"topic", "gradeLevel", "title", "description", "sections", "rubric"},
	}
}

func grammarSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary": {Type: genai.TypeString, Description: "A brief, encouraging overview of the writing style and main issues found."},
			"segments": {
				Type:        genai.TypeArray,
				Description: "The complete input text broken down into segments.",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"id":          {Type: genai.TypeString, Description: "Unique ID"},
						"text":        {Type: genai.TypeString, Description: "The original text for this segment."},
						"type":        {Type: genai.TypeString, Enum: []string{"text", "error", "suggestion"}},
						"replacement": {Type: genai.TypeString, Description: "The corrected text (required if error/suggestion)"},
						"explanation": {Type: genai.TypeString, Description: "Why this change is needed."},
					},
					Required: []string{"id", "text", "type"},
				},
			},
		},
		Required: []string{"summary", "segments"},
	}
}

func searchSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary": {Type: genai.TypeString, Description: "A clean, 1-4 sentence paragraph summary of the topic."},
			"sources": {
				Type:        genai.TypeArray,
				Description: "List of credible sources for the information.",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title":   {Type: genai.TypeString},
						"url":     {Type: genai.TypeString},
						"snippet": {Type: genai.TypeString},
					},
					Required: []string{"title", "url", "snippet"},
				},
			},
			"relatedQuestions": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"websiteContent": websiteContentSchema(),
		},
		Required: []string{"summary", "sources", "relatedQuestions", "websiteContent"},
	}
}
