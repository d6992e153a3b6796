// Copyright 2026 The Plotsleuth Authors
// SPDX-License-Identifier: MIT

package identify

import (
	"encoding/json"
	"strings"
)

// parseResult turns raw completion text into a validated Result. Parsing and
// validation are distinct steps: the text is first unmarshalled into an
// untyped object, then each required field is checked for presence and
// primitive type. Markdown code fences around the JSON are stripped before
// parsing; a fenced payload that still is not JSON fails the same way as an
// unfenced one.
func parseResult(content string) (*Result, error) {
	raw := strings.TrimSpace(content)

	var fields map[string]any
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &fields); err != nil {
		return nil, &MalformedResponseError{Raw: raw, Err: err}
	}

	return validateResult(fields)
}

// validateResult checks the untyped object against the Result shape. All
// offending fields are collected so the error names every problem at once,
// not just the first.
func validateResult(fields map[string]any) (*Result, error) {
	var (
		result  Result
		badOnes []FieldError
	)

	result.MovieName = requireString(fields, "movie_name", &badOnes)
	result.ReleaseDate = requireString(fields, "release_date", &badOnes)
	result.Rationale = requireString(fields, "rationale", &badOnes)
	result.Confidence = requireNumber(fields, "confidence", &badOnes)

	if len(badOnes) > 0 {
		return nil, &SchemaValidationError{Fields: badOnes}
	}
	return &result, nil
}

func requireString(fields map[string]any, name string, errs *[]FieldError) string {
	v, ok := fields[name]
	if !ok {
		*errs = append(*errs, FieldError{Name: name, Reason: "required field missing"})
		return ""
	}
	s, ok := v.(string)
	if !ok {
		*errs = append(*errs, FieldError{Name: name, Reason: "expected a string"})
		return ""
	}
	return s
}

func requireNumber(fields map[string]any, name string, errs *[]FieldError) float64 {
	v, ok := fields[name]
	if !ok {
		*errs = append(*errs, FieldError{Name: name, Reason: "required field missing"})
		return 0
	}
	f, ok := v.(float64)
	if !ok {
		*errs = append(*errs, FieldError{Name: name, Reason: "expected a number"})
		return 0
	}
	return f
}

// stripCodeFences removes markdown code fences wrapping a completion. Models
// frequently return ```json ... ``` even when told not to.
func stripCodeFences(content string) string {
	if !strings.HasPrefix(content, "```") {
		return content
	}

	lines := strings.Split(content, "\n")
	var inner []string
	inBlock := false
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inBlock = !inBlock
			continue
		}
		if inBlock {
			inner = append(inner, line)
		}
	}
	return strings.TrimSpace(strings.Join(inner, "\n"))
}
