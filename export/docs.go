/*
Copyright 2026 MindFlow Authors
SPDX-License-Identifier: Apache-2.0
*/

package export

import (
	"context"
	"fmt"

	"github.com/chainguard-dev/clog"
	"google.golang.org/api/docs/v1"

	"mindflow.dev/mindflow/content"
)

// ArticleRequests builds the batch that lays out a generated article: hero
// title and subtitle, then each section as a heading followed by its body.
func ArticleRequests(wc content.WebsiteContent) []*docs.Request {
	w := newBlockWriter()
	w.Append(wc.HeroTitle, styleTitle)
	w.Append(wc.HeroSubtitle, styleSubtitle)
	for _, section := range wc.Sections {
		w.Append(section.Title, styleHeading1)
		w.Append(section.Content, styleNormal)
	}
	return w.Requests()
}

// StudyGuideRequests builds the batch that lays out a study guide: topic,
// executive summary, each key concept, and the article sections when the
// guide carries any.
func StudyGuideRequests(sg content.StudyGuide) []*docs.Request {
	w := newBlockWriter()
	w.Append(sg.Topic, styleTitle)
	w.Append("Executive Summary", styleHeading1)
	w.Append(sg.Summary, styleNormal)
	w.Append("Core Concepts", styleHeading1)
	for _, concept := range sg.KeyConcepts {
		w.Append(concept.Title, styleHeading2)
		w.Append(concept.Description, styleNormal)
	}
	if len(sg.WebsiteContent.Sections) > 0 {
		w.Append("Detailed Insights", styleHeading1)
		for _, section := range sg.WebsiteContent.Sections {
			w.Append(section.Title, styleHeading2)
			w.Append(section.Content, styleNormal)
		}
	}
	return w.Requests()
}

// ExportArticle creates a text document from a generated article and
// returns its URL. An empty title falls back to the article's hero title.
func (s *Synthesizer) ExportArticle(ctx context.Context, title string, wc content.WebsiteContent) (string, error) {
	if title == "" {
		title = wc.HeroTitle
	}
	return s.exportDocument(ctx, title, ArticleRequests(wc))
}

// ExportStudyGuide creates a text document from a study guide and returns
// its URL. The document is titled after the guide's topic.
func (s *Synthesizer) ExportStudyGuide(ctx context.Context, sg content.StudyGuide) (string, error) {
	return s.exportDocument(ctx, sg.Topic, StudyGuideRequests(sg))
}

func (s *Synthesizer) exportDocument(ctx context.Context, title string, reqs []*docs.Request) (string, error) {
	log := clog.FromContext(ctx)

	ts, err := s.authorize(ctx)
	if err != nil {
		return "", err
	}
	backend, err := s.newDocs(ctx, ts)
	if err != nil {
		return "", err
	}

	id, err := backend.CreateDocument(ctx, title)
	if err != nil {
		return "", fmt.Errorf("creating document: %w", err)
	}
	if err := backend.BatchUpdateDocument(ctx, id, reqs); err != nil {
		return "", fmt.Errorf("%w: %w", ErrBatchSubmission, err)
	}

	log.With("document", id).With("blocks", len(reqs)/2).Info("Exported document")
	return fmt.Sprintf("https://docs.google.com/document/d/%s/edit", id), nil
}
