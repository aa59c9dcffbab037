/*
Copyright 2026 MindFlow Authors
SPDX-License-Identifier: Apache-2.0
*/

package export

import (
	"context"
	"fmt"

	"github.com/chainguard-dev/clog"
	"google.golang.org/api/forms/v1"

	"mindflow.dev/mindflow/content"
)

// FormRequests builds the batch that lays out a worksheet as a form: the
// description first (form creation accepts only a title), then per
// worksheet section a header item followed by one question item per entry,
// all at a single monotonically increasing location index.
func FormRequests(tc content.TeacherContent) []*forms.Request {
	reqs := []*forms.Request{{
		UpdateFormInfo: &forms.UpdateFormInfoRequest{
			Info:       &forms.Info{Description: tc.Description},
			UpdateMask: "description",
		},
	}}

	index := int64(0)
	add := func(item *forms.Item) {
		reqs = append(reqs, &forms.Request{CreateItem: &forms.CreateItemRequest{
			Item: item,
			Location: &forms.Location{
				Index: index,
				// Index 0 must survive serialization.
				ForceSendFields: []string{"Index"},
			},
		}})
		index++
	}

	for _, section := range tc.Sections {
		add(&forms.Item{Title: section.Title, TextItem: &forms.TextItem{}})
		for _, prompt := range section.Content {
			add(questionItem(section.Type, prompt))
		}
	}
	return reqs
}

// questionItem maps a worksheet section format onto a form question.
// Formats without a native form equivalent (matching, sequencing,
// fill-in-the-blank, activity) become short-text questions.
func questionItem(kind content.SectionType, prompt string) *forms.Item {
	q := &forms.Question{}
	switch kind {
	case content.SectionMultipleChoice:
		q.ChoiceQuestion = choiceQuestion("A", "B", "C", "D")
	case content.SectionTrueFalse:
		q.ChoiceQuestion = choiceQuestion("True", "False")
	case content.SectionEssay:
		q.TextQuestion = &forms.TextQuestion{Paragraph: true}
	default:
		q.TextQuestion = &forms.TextQuestion{}
	}
	return &forms.Item{
		Title:        prompt,
		QuestionItem: &forms.QuestionItem{Question: q},
	}
}

func choiceQuestion(values ...string) *forms.ChoiceQuestion {
	options := make([]*forms.Option, 0, len(values))
	for _, v := range values {
		options = append(options, &forms.Option{Value: v})
	}
	return &forms.ChoiceQuestion{Type: "RADIO", Options: options}
}

// ExportForm creates a form from a worksheet and returns its responder
// URL, falling back to the edit URL when the API omits one.
func (s *Synthesizer) ExportForm(ctx context.Context, tc content.TeacherContent) (string, error) {
	log := clog.FromContext(ctx)

	ts, err := s.authorize(ctx)
	if err != nil {
		return "", err
	}
	backend, err := s.newForms(ctx, ts)
	if err != nil {
		return "", err
	}

	title := tc.Title
	if title == "" {
		title = tc.Topic
	}
	form, err := backend.CreateForm(ctx, title)
	if err != nil {
		return "", fmt.Errorf("creating form: %w", err)
	}
	if err := backend.BatchUpdateForm(ctx, form.FormId, FormRequests(tc)); err != nil {
		return "", fmt.Errorf("%w: %w", ErrBatchSubmission, err)
	}

	log.With("form", form.FormId).With("sections", len(tc.Sections)).Info("Exported form")
	if form.ResponderUri != "" {
		return form.ResponderUri, nil
	}
	return fmt.Sprintf("https://docs.google.com/forms/d/%s/edit", form.FormId), nil
}
