/*
Copyright 2026 MindFlow Authors
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// resolveFunc provides the replacement text for a placeholder name.
type resolveFunc func(name string) (string, error)

// walkTemplate scans the template and calls resolve for each placeholder.
// Both parsing (NewPrompt) and substitution (Build) use this walk, so the
// two tokenize identically.
func walkTemplate(template string, resolve resolveFunc) (string, error) {
	var result strings.Builder
	for len(template) > 0 {
		start := strings.Index(template, "{{")
		if start == -1 {
			result.WriteString(template)
			break
		}
		result.WriteString(template[:start])

		end := strings.Index(template[start:], "}}")
		if end == -1 {
			return "", errors.New("unclosed binding: missing '}}'")
		}
		end += start + 2

		name := strings.TrimSpace(template[start+2 : end-2])
		if !isValidIdentifier(name) {
			return "", fmt.Errorf("invalid binding identifier %q", name)
		}
		replacement, err := resolve(name)
		if err != nil {
			return "", err
		}
		result.WriteString(replacement)

		template = template[end:]
	}
	return result.String(), nil
}

// isValidIdentifier reports whether s is a letter followed by letters,
// digits, or underscores.
func isValidIdentifier(s string) bool {
	if len(s) == 0 {
		return false
	}
	runes := []rune(s)
	if !unicode.IsLetter(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
