/*
Copyright 2026 MindFlow Authors
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

// Must wraps a call returning (*Prompt, error) and panics on error, for
// package-level template variables known valid at compile time:
//
//	var p = promptbuilder.Must(promptbuilder.NewPrompt(`Hello {{name}}`))
func Must(p *Prompt, err error) *Prompt {
	if err != nil {
		panic(err)
	}
	return p
}

// MustNewPrompt creates a prompt from a template literal and panics on error.
func MustNewPrompt(template stringLiteral) *Prompt {
	return Must(NewPrompt(template))
}

// MustBindString binds a runtime string and panics on error.
func (p *Prompt) MustBindString(name, value string) *Prompt {
	return Must(p.BindString(name, value))
}
