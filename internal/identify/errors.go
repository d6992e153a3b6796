// Copyright 2026 The Plotsleuth Authors
// SPDX-License-Identifier: MIT

package identify

import (
	"fmt"
	"strings"
)

// UpstreamError reports a failed call to the LLM completion API (network,
// auth, quota, malformed request). The underlying error is wrapped, never
// retried.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("LLM API error: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// MalformedResponseError reports completion text that could not be parsed as
// JSON. Raw carries the full text for operator diagnosis.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return "Failed to parse response as JSON. Raw response was: " + e.Raw
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// SchemaValidationError reports parsed JSON that does not match the Result
// shape. Fields lists each offending field with the reason it was rejected.
type SchemaValidationError struct {
	Fields []FieldError
}

// FieldError describes a single rejected field.
type FieldError struct {
	Name   string
	Reason string
}

func (e *SchemaValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Name + ": " + f.Reason
	}
	return "Response JSON missing required fields or invalid types: " + strings.Join(parts, "; ")
}
