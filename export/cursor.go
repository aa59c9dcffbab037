/*
Copyright 2026 MindFlow Authors
SPDX-License-Identifier: Apache-2.0
*/

package export

import (
	"unicode/utf16"

	"google.golang.org/api/docs/v1"
)

// Named paragraph styles in the order documents use them.
const (
	styleTitle    = "TITLE"
	styleSubtitle = "SUBTITLE"
	styleHeading1 = "HEADING_1"
	styleHeading2 = "HEADING_2"
	styleNormal   = "NORMAL_TEXT"
)

// blockWriter accumulates the request list for a text document. The Docs
// API addresses text by UTF-16 code-unit index starting at 1, and every
// insertion shifts everything after it, so blocks must be appended in
// strictly increasing index order. The writer owns the running index;
// callers only ever append.
type blockWriter struct {
	index    int64
	requests []*docs.Request
}

func newBlockWriter() *blockWriter {
	return &blockWriter{index: 1}
}

// Append adds one paragraph of text with the given named style: an
// InsertTextRequest at the current index followed by an
// UpdateParagraphStyleRequest over the inserted range. The index advances
// by the UTF-16 length of the text plus its trailing newline.
func (w *blockWriter) Append(text, namedStyle string) {
	line := text + "\n"
	length := utf16Len(line)
	w.requests = append(w.requests,
		&docs.Request{InsertText: &docs.InsertTextRequest{
			Location: &docs.Location{Index: w.index},
			Text:     line,
		}},
		&docs.Request{UpdateParagraphStyle: &docs.UpdateParagraphStyleRequest{
			Range:          &docs.Range{StartIndex: w.index, EndIndex: w.index + length},
			ParagraphStyle: &docs.ParagraphStyle{NamedStyleType: namedStyle},
			Fields:         "namedStyleType",
		}},
	)
	w.index += length
}

// Requests returns the accumulated batch in append order.
func (w *blockWriter) Requests() []*docs.Request {
	return w.requests
}

// utf16Len returns the length of s in UTF-16 code units, the unit the Docs
// API counts indices in. Characters outside the BMP count as two.
func utf16Len(s string) int64 {
	return int64(len(utf16.Encode([]rune(s))))
}
