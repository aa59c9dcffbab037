/*
Copyright 2026 MindFlow Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package export turns generated study material into Google Workspace
// artifacts: articles and study guides into Docs, slide decks into Slides,
// and worksheets into Forms. Each export authorizes, creates the artifact,
// and submits a single batchUpdate; there is no partial rollback.
package export

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/forms/v1"
	"google.golang.org/api/option"
	"google.golang.org/api/slides/v1"

	"mindflow.dev/mindflow/assets"
)

// ImageResolver finds a representative photo for a short query.
// assets.Resolver satisfies this.
type ImageResolver interface {
	Resolve(ctx context.Context, query string) (assets.Image, bool)
}

// Backend interfaces cover the few API surfaces exports touch, so tests can
// substitute in-memory fakes without an HTTP layer.

type documentBackend interface {
	CreateDocument(ctx context.Context, title string) (string, error)
	BatchUpdateDocument(ctx context.Context, id string, reqs []*docs.Request) error
}

type presentationBackend interface {
	CreatePresentation(ctx context.Context, title string) (string, error)
	BatchUpdatePresentation(ctx context.Context, id string, reqs []*slides.Request) error
}

type formBackend interface {
	CreateForm(ctx context.Context, title string) (*forms.Form, error)
	BatchUpdateForm(ctx context.Context, id string, reqs []*forms.Request) error
}

// Backend factories take the token source acquired at export time; the real
// ones construct a Google API service per export.
type (
	documentBackendFactory     func(ctx context.Context, ts oauth2.TokenSource) (documentBackend, error)
	presentationBackendFactory func(ctx context.Context, ts oauth2.TokenSource) (presentationBackend, error)
	formBackendFactory         func(ctx context.Context, ts oauth2.TokenSource) (formBackend, error)
)

// Synthesizer exports generated content to Google Workspace.
type Synthesizer struct {
	tokens TokenProvider
	images ImageResolver

	newDocs   documentBackendFactory
	newSlides presentationBackendFactory
	newForms  formBackendFactory

	imageConcurrency int
}

// Option configures a Synthesizer.
type Option func(*Synthesizer) error

// WithImageResolver enables per-slide image lookup during presentation
// export. Without a resolver slides are exported text-only.
func WithImageResolver(r ImageResolver) Option {
	return func(s *Synthesizer) error {
		if r == nil {
			return errors.New("image resolver cannot be nil")
		}
		s.images = r
		return nil
	}
}

// WithImageConcurrency bounds parallel image lookups during presentation
// export.
func WithImageConcurrency(n int) Option {
	return func(s *Synthesizer) error {
		if n < 1 {
			return fmt.Errorf("image concurrency must be at least 1, got %d", n)
		}
		s.imageConcurrency = n
		return nil
	}
}

func withDocumentBackend(f documentBackendFactory) Option {
	return func(s *Synthesizer) error {
		s.newDocs = f
		return nil
	}
}

func withPresentationBackend(f presentationBackendFactory) Option {
	return func(s *Synthesizer) error {
		s.newSlides = f
		return nil
	}
}

func withFormBackend(f formBackendFactory) Option {
	return func(s *Synthesizer) error {
		s.newForms = f
		return nil
	}
}

// NewSynthesizer creates a Synthesizer authorizing through the given
// provider.
func NewSynthesizer(tokens TokenProvider, options ...Option) (*Synthesizer, error) {
	if tokens == nil {
		return nil, errors.New("token provider is required")
	}
	s := &Synthesizer{
		tokens:           tokens,
		newDocs:          newGoogleDocsBackend,
		newSlides:        newGoogleSlidesBackend,
		newForms:         newGoogleFormsBackend,
		imageConcurrency: 4,
	}
	for _, opt := range options {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return s, nil
}

// authorize acquires a token source, wrapping failures in ErrAuthorization.
func (s *Synthesizer) authorize(ctx context.Context) (oauth2.TokenSource, error) {
	ts, err := s.tokens.Token(ctx)
	if err != nil {
		if errors.Is(err, ErrAuthorization) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrAuthorization, err)
	}
	return ts, nil
}

type googleDocsBackend struct {
	svc *docs.Service
}

func newGoogleDocsBackend(ctx context.Context, ts oauth2.TokenSource) (documentBackend, error) {
	svc, err := docs.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("creating docs service: %w", err)
	}
	return googleDocsBackend{svc: svc}, nil
}

func (b googleDocsBackend) CreateDocument(ctx context.Context, title string) (string, error) {
	doc, err := b.svc.Documents.Create(&docs.Document{Title: title}).Context(ctx).Do()
	if err != nil {
		return "", err
	}
	return doc.DocumentId, nil
}

func (b googleDocsBackend) BatchUpdateDocument(ctx context.Context, id string, reqs []*docs.Request) error {
	_, err := b.svc.Documents.BatchUpdate(id, &docs.BatchUpdateDocumentRequest{Requests: reqs}).Context(ctx).Do()
	return err
}

type googleSlidesBackend struct {
	svc *slides.Service
}

func newGoogleSlidesBackend(ctx context.Context, ts oauth2.TokenSource) (presentationBackend, error) {
	svc, err := slides.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("creating slides service: %w", err)
	}
	return googleSlidesBackend{svc: svc}, nil
}

func (b googleSlidesBackend) CreatePresentation(ctx context.Context, title string) (string, error) {
	pres, err := b.svc.Presentations.Create(&slides.Presentation{Title: title}).Context(ctx).Do()
	if err != nil {
		return "", err
	}
	return pres.PresentationId, nil
}

func (b googleSlidesBackend) BatchUpdatePresentation(ctx context.Context, id string, reqs []*slides.Request) error {
	_, err := b.svc.Presentations.BatchUpdate(id, &slides.BatchUpdatePresentationRequest{Requests: reqs}).Context(ctx).Do()
	return err
}

type googleFormsBackend struct {
	svc *forms.Service
}

func newGoogleFormsBackend(ctx context.Context, ts oauth2.TokenSource) (formBackend, error) {
	svc, err := forms.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("creating forms service: %w", err)
	}
	return googleFormsBackend{svc: svc}, nil
}

func (b googleFormsBackend) CreateForm(ctx context.Context, title string) (*forms.Form, error) {
	// Form creation accepts only the title; everything else goes through
	// batchUpdate.
	return b.svc.Forms.Create(&forms.Form{Info: &forms.Info{Title: title}}).Context(ctx).Do()
}

func (b googleFormsBackend) BatchUpdateForm(ctx context.Context, id string, reqs []*forms.Request) error {
	_, err := b.svc.Forms.BatchUpdate(id, &forms.BatchUpdateFormRequest{Requests: reqs}).Context(ctx).Do()
	return err
}
