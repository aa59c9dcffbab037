/*
Copyright 2026 MindFlow Authors
SPDX-License-Identifier: Apache-2.0
*/

package generate

import (
	"strings"

	"google.golang.org/genai"

	"mindflow.dev/mindflow/content"
	"mindflow.dev/mindflow/promptbuilder"
	"mindflow.dev/mindflow/schemas"
)

// Sampling carries the per-mode sampling configuration sent to the backend.
type Sampling struct {
	// Temperature controls randomness. Grammar analysis runs
	// deterministic-leaning to minimize spurious rewrites.
	Temperature float32
	// WebGrounding enables the backend's search-grounding capability.
	// Only search mode requests it.
	WebGrounding bool
}

// Request is a fully built generation request: the instruction text with
// the user's input embedded, the output contract, and sampling settings.
type Request struct {
	Instruction string
	Schema      *genai.Schema
	Sampling    Sampling
}

const (
	grammarTemperature = 0.3
	defaultTemperature = 0.7
)

var studentPrompt = promptbuilder.MustNewPrompt(`Generate a comprehensive study guide for: "{{topic}}".
Include summary, key concepts, flashcards, quiz, deep-dive website article, AND a presentation slide deck.
For slides:
1. Generate 5-8 slides.
2. Create concise bullet points.
3. Provide a visual query for a stock-photo search.`)

var teacherPrompt = promptbuilder.MustNewPrompt(`Generate a high-quality educational worksheet/test for teachers on the topic: "{{topic}}".
The content should be professional, printable, and suitable for a classroom setting.
Include 3-5 distinct sections using a variety of formats (Multiple Choice, Fill in the Blank, True/False, Sequencing, etc.).
Include a clear grading rubric at the end.`)

var grammarPrompt = promptbuilder.MustNewPrompt(`Act as an expert editor and grammar coach.
Analyze the following text provided by the user.
Break the ENTIRE text down into an array of segments.
Most segments will be type 'text' (no issues).
If you find a grammar mistake, spelling error, or punctuation issue, create a segment with type 'error', provide the 'replacement', and an 'explanation'.
If you find a stylistic improvement (word choice, clarity, flow), create a segment with type 'suggestion', provide the 'replacement', and an 'explanation'.
Ensure the concatenated 'text' fields of all segments exactly match the input text.

Input Text to Analyze:
"{{topic}}"`)

var searchPrompt = promptbuilder.MustNewPrompt(`Perform a deep search on the topic: "{{topic}}".
1. Provide a concise, high-quality summary (1-4 sentences) that is easy to read.
2. Identify 3-5 credible sources that would be relevant.
3. Suggest 3 related follow-up questions.
4. Generate a 'websiteContent' object that represents a deep-dive article about the topic. Make it rich, with 3-4 sections and visual suggestions (image/chart).`)

var regeneratePrompt = promptbuilder.MustNewPrompt(`Regenerate a clean, concise 1-4 sentence summary about: "{{topic}}". Make it sound professional yet accessible. Do not include introductory phrases.`)

var suggestPrompt = promptbuilder.MustNewPrompt(`Provide 3-5 short, relevant search suggestions that complete or relate to this query: "{{query}}". Return ONLY a JSON array of strings.`)

// BuildRequest constructs the generation request for the given mode,
// embedding userText verbatim in the mode's instruction template and pairing
// it with the matching output contract. Unknown modes fall back to the
// study-guide request, mirroring schemas.For.
//
// Returns ErrInvalidInput when userText is empty or whitespace-only; no
// request reaches the network in that case.
func BuildRequest(userText string, mode content.Mode) (*Request, error) {
	if strings.TrimSpace(userText) == "" {
		return nil, ErrInvalidInput
	}

	tmpl := studentPrompt
	sampling := Sampling{Temperature: defaultTemperature}
	switch mode {
	case content.ModeTeacher:
		tmpl = teacherPrompt
	case content.ModeGrammar:
		tmpl = grammarPrompt
		sampling.Temperature = grammarTemperature
	case content.ModeSearch:
		tmpl = searchPrompt
		sampling.WebGrounding = true
	}

	bound, err := tmpl.BindString("topic", userText)
	if err != nil {
		return nil, err
	}
	instruction, err := bound.Build()
	if err != nil {
		return nil, err
	}

	return &Request{
		Instruction: instruction,
		Schema:      schemas.For(mode),
		Sampling:    sampling,
	}, nil
}
