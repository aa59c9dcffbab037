/*
Copyright 2026 MindFlow Authors
SPDX-License-Identifier: Apache-2.0
*/

package schemas

import (
	"github.com/invopop/jsonschema"

	"mindflow.dev/mindflow/content"
)

// reflector is configured so the emitted schema is self-contained: no $ref
// indirection, required derived from tags, inline struct expansion.
var reflector = jsonschema.Reflector{
	ExpandedStruct:            true,
	AllowAdditionalProperties: true,
	DoNotReference:            true,
}

// Descriptor returns a JSON Schema rendition of the mode's content type,
// derived by reflection over the same Go types the payload is decoded into.
// Callers that persist or display the contract (settings screens, request
// logs) use this instead of the genai descriptor.
func Descriptor(mode content.Mode) *jsonschema.Schema {
	switch mode {
	case content.ModeTeacher:
		return reflector.Reflect(&content.TeacherContent{})
	case content.ModeGrammar:
		return reflector.Reflect(&content.GrammarAnalysis{})
	case content.ModeSearch:
		return reflector.Reflect(&content.SearchResult{})
	default:
		return reflector.Reflect(&content.StudyGuide{})
	}
}
