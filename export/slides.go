/*
Copyright 2026 MindFlow Authors
SPDX-License-Identifier: Apache-2.0
*/

package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/chainguard-dev/clog"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/slides/v1"

	"mindflow.dev/mindflow/assets"
	"mindflow.dev/mindflow/content"
)

const defaultPresentationTitle = "MindFlow Presentation"

// Slide geometry in points. Title across the top, bullets on the left,
// image on the right.
const (
	titleBoxWidth  = 600.0
	titleBoxHeight = 60.0
	titleBoxX      = 50.0
	titleBoxY      = 30.0

	bodyBoxWidth  = 350.0
	bodyBoxHeight = 300.0
	bodyBoxX      = 50.0
	bodyBoxY      = 100.0

	imageBoxWidth  = 300.0
	imageBoxHeight = 300.0
	imageBoxX      = 410.0
	imageBoxY      = 100.0

	titleFontSize = 28.0
)

// PresentationRequests builds the batch that lays out a slide deck. images
// is parallel to slideList; a nil entry leaves that slide without an image.
// Object ids are deterministic per position (slide_i, title_i, body_i,
// image_i) so resubmission of the same deck produces the same structure.
func PresentationRequests(slideList []content.Slide, images []*assets.Image) []*slides.Request {
	var reqs []*slides.Request
	for i, slide := range slideList {
		slideID := fmt.Sprintf("slide_%d", i)
		reqs = append(reqs, &slides.Request{CreateSlide: &slides.CreateSlideRequest{
			ObjectId: slideID,
			// Index 0 is the default title slide of a fresh presentation.
			InsertionIndex:       int64(i + 1),
			SlideLayoutReference: &slides.LayoutReference{PredefinedLayout: "BLANK"},
		}})

		titleID := fmt.Sprintf("title_%d", i)
		reqs = append(reqs,
			createTextBox(titleID, slideID, titleBoxWidth, titleBoxHeight, titleBoxX, titleBoxY),
			&slides.Request{InsertText: &slides.InsertTextRequest{
				ObjectId: titleID,
				Text:     slide.Title,
			}},
			&slides.Request{UpdateTextStyle: &slides.UpdateTextStyleRequest{
				ObjectId: titleID,
				Style: &slides.TextStyle{
					Bold:       true,
					FontFamily: "Arial",
					FontSize:   &slides.Dimension{Magnitude: titleFontSize, Unit: "PT"},
				},
				TextRange: &slides.Range{Type: "ALL"},
				Fields:    "bold,fontFamily,fontSize",
			}},
		)

		if len(slide.Bullets) > 0 {
			bodyID := fmt.Sprintf("body_%d", i)
			var body strings.Builder
			for _, bullet := range slide.Bullets {
				fmt.Fprintf(&body, "• %s\n", bullet)
			}
			reqs = append(reqs,
				createTextBox(bodyID, slideID, bodyBoxWidth, bodyBoxHeight, bodyBoxX, bodyBoxY),
				&slides.Request{InsertText: &slides.InsertTextRequest{
					ObjectId: bodyID,
					Text:     body.String(),
				}},
			)
		}

		if i < len(images) && images[i] != nil {
			reqs = append(reqs, &slides.Request{CreateImage: &slides.CreateImageRequest{
				ObjectId: fmt.Sprintf("image_%d", i),
				Url:      images[i].URL,
				ElementProperties: elementProperties(slideID,
					imageBoxWidth, imageBoxHeight, imageBoxX, imageBoxY),
			}})
		}
	}
	return reqs
}

func createTextBox(id, slideID string, width, height, x, y float64) *slides.Request {
	return &slides.Request{CreateShape: &slides.CreateShapeRequest{
		ObjectId:          id,
		ShapeType:         "TEXT_BOX",
		ElementProperties: elementProperties(slideID, width, height, x, y),
	}}
}

func elementProperties(slideID string, width, height, x, y float64) *slides.PageElementProperties {
	return &slides.PageElementProperties{
		PageObjectId: slideID,
		Size: &slides.Size{
			Width:  &slides.Dimension{Magnitude: width, Unit: "PT"},
			Height: &slides.Dimension{Magnitude: height, Unit: "PT"},
		},
		Transform: &slides.AffineTransform{
			ScaleX:     1,
			ScaleY:     1,
			TranslateX: x,
			TranslateY: y,
			Unit:       "PT",
		},
	}
}

// ExportPresentation creates a slide deck from the given slides and returns
// its URL. Images are resolved per slide from each slide's visual query; a
// failed lookup drops only that slide's image.
func (s *Synthesizer) ExportPresentation(ctx context.Context, title string, slideList []content.Slide) (string, error) {
	log := clog.FromContext(ctx)
	if title == "" {
		title = defaultPresentationTitle
	}

	ts, err := s.authorize(ctx)
	if err != nil {
		return "", err
	}
	backend, err := s.newSlides(ctx, ts)
	if err != nil {
		return "", err
	}

	images := s.resolveImages(ctx, slideList)
	reqs := PresentationRequests(slideList, images)

	id, err := backend.CreatePresentation(ctx, title)
	if err != nil {
		return "", fmt.Errorf("creating presentation: %w", err)
	}
	if len(reqs) > 0 {
		if err := backend.BatchUpdatePresentation(ctx, id, reqs); err != nil {
			return "", fmt.Errorf("%w: %w", ErrBatchSubmission, err)
		}
	}

	log.With("presentation", id).With("slides", len(slideList)).Info("Exported presentation")
	return fmt.Sprintf("https://docs.google.com/presentation/d/%s/edit", id), nil
}

// resolveImages looks up one image per slide, preserving slide order.
// Lookups are bounded-parallel and individually best-effort.
func (s *Synthesizer) resolveImages(ctx context.Context, slideList []content.Slide) []*assets.Image {
	images := make([]*assets.Image, len(slideList))
	if s.images == nil {
		return images
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.imageConcurrency)
	for i, slide := range slideList {
		if slide.VisualQuery == "" {
			continue
		}
		g.Go(func() error {
			if img, ok := s.images.Resolve(ctx, slide.VisualQuery); ok {
				images[i] = &img
			}
			return nil
		})
	}
	_ = g.Wait() // lookups never return errors
	return images
}
