/*
Copyright 2026 MindFlow Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package promptbuilder provides a small template engine for model prompts.
// Templates declare {{name}} placeholders; values are bound immutably (each
// Bind returns a new Prompt) and Build fails if any placeholder is unbound,
// so a prompt can never reach the model with a hole in it.
package promptbuilder

import (
	"encoding/json"
	"fmt"
	"maps"

	"gopkg.in/yaml.v3"
)

// stringLiteral only accepts untyped constant strings, keeping template
// text under developer control.
type stringLiteral string

// Prompt is a template with bindable placeholders.
type Prompt struct {
	template string
	bindings map[string]binding
}

// binding produces the substitution value for one placeholder.
type binding interface {
	value() (string, error)
}

type unboundBinding struct{ name string }

func (u *unboundBinding) value() (string, error) {
	return "", fmt.Errorf("unbound placeholder: %s", u.name)
}

type stringBinding struct{ val string }

func (s *stringBinding) value() (string, error) { return s.val, nil }

type jsonBinding struct{ data any }

func (j *jsonBinding) value() (string, error) {
	b, err := json.MarshalIndent(j.data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(b), nil
}

type yamlBinding struct{ data any }

func (y *yamlBinding) value() (string, error) {
	b, err := yaml.Marshal(y.data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return string(b), nil
}

// NewPrompt creates a prompt from a template literal, collecting its
// placeholders.
func NewPrompt(template stringLiteral) (*Prompt, error) {
	bindings := make(map[string]binding)
	tmpl, err := walkTemplate(string(template), func(name string) (string, error) {
		if _, exists := bindings[name]; !exists {
			bindings[name] = &unboundBinding{name: name}
		}
		return fmt.Sprintf("{{%s}}", name), nil
	})
	if err != nil {
		return nil, err
	}
	return &Prompt{template: tmpl, bindings: bindings}, nil
}

// Placeholders returns the set of placeholder names in the template.
func (p *Prompt) Placeholders() map[string]struct{} {
	names := make(map[string]struct{}, len(p.bindings))
	for name := range p.bindings {
		names[name] = struct{}{}
	}
	return names
}

func (p *Prompt) bind(name string, b binding) (*Prompt, error) {
	existing, exists := p.bindings[name]
	if !exists {
		return nil, fmt.Errorf("binding %q not found in template", name)
	}
	if _, unbound := existing.(*unboundBinding); !unbound {
		return nil, fmt.Errorf("binding %q already bound", name)
	}
	clone := &Prompt{template: p.template, bindings: maps.Clone(p.bindings)}
	clone.bindings[name] = b
	return clone, nil
}

// BindString binds a runtime string value to a placeholder. The value is
// substituted verbatim; this is how user-supplied text enters a prompt.
func (p *Prompt) BindString(name, value string) (*Prompt, error) {
	return p.bind(name, &stringBinding{val: value})
}

// BindJSON binds structured data to a placeholder by marshaling it as JSON.
func (p *Prompt) BindJSON(name string, data any) (*Prompt, error) {
	return p.bind(name, &jsonBinding{data: data})
}

// BindYAML binds structured data to a placeholder by marshaling it as YAML.
func (p *Prompt) BindYAML(name string, data any) (*Prompt, error) {
	return p.bind(name, &yamlBinding{data: data})
}

// Build constructs the final prompt text, failing if any placeholder is
// still unbound.
func (p *Prompt) Build() (string, error) {
	values := make(map[string]string, len(p.bindings))
	for name, b := range p.bindings {
		val, err := b.value()
		if err != nil {
			return "", err
		}
		values[name] = val
	}
	return walkTemplate(p.template, func(name string) (string, error) {
		if val, exists := values[name]; exists {
			return val, nil
		}
		return "", fmt.Errorf("internal error: binding %q not found in values map", name)
	})
}
