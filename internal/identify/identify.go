// Copyright 2026 The Plotsleuth Authors
// SPDX-License-Identifier: MIT

// Package identify implements the movie identification pipeline: build a
// prompt from a plot description, send it to an LLM provider, and parse and
// validate the completion into a structured result.
package identify

import (
	"context"

	"github.com/davetashner/plotsleuth/internal/llm"
)

// Default sampling parameters for identification requests. Low randomness
// and near-full nucleus sampling keep the model on the JSON format while
// leaving it room to reason about ambiguous plots.
const (
	defaultMaxTokens   = 400
	defaultTemperature = 0.3
	defaultTopP        = 0.95
)

// Result is the structured answer for one identification request. All four
// fields are required in the LLM's response; values are passed through as
// received once shape-valid (confidence is not clamped to [0,1]).
type Result struct {
	MovieName   string  `json:"movie_name"`
	ReleaseDate string  `json:"release_date"`
	Rationale   string  `json:"rationale"`
	Confidence  float64 `json:"confidence"`
}

// Service runs the identification pipeline against an LLM provider. It holds
// no per-request state and is safe for concurrent use.
type Service struct {
	provider    llm.Provider
	model       string
	maxTokens   int
	temperature float64
	topP        float64
}

// Option configures a Service.
type Option func(*Service)

// WithModel overrides the provider's default model for identification
// requests.
func WithModel(model string) Option {
	return func(s *Service) {
		s.model = model
	}
}

// WithMaxTokens overrides the default output token limit.
func WithMaxTokens(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxTokens = n
		}
	}
}

// WithSampling overrides the default temperature and top_p.
func WithSampling(temperature, topP float64) Option {
	return func(s *Service) {
		s.temperature = temperature
		s.topP = topP
	}
}

// NewService creates a Service that delegates completions to provider.
func NewService(provider llm.Provider, opts ...Option) *Service {
	s := &Service{
		provider:    provider,
		maxTokens:   defaultMaxTokens,
		temperature: defaultTemperature,
		topP:        defaultTopP,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Identify deduces the movie described by plot. The pipeline is linear:
// build the prompt, call the provider, trim and parse the completion, and
// validate its shape. The first failure short-circuits the request:
//
//   - *UpstreamError if the provider call fails
//   - *MalformedResponseError if the completion is not valid JSON
//   - *SchemaValidationError if required fields are missing or mistyped
//
// An empty plot is allowed and proceeds through the normal pipeline.
func (s *Service) Identify(ctx context.Context, plot string) (*Result, error) {
	prompt := buildIdentifyPrompt(plot)

	temperature := s.temperature
	topP := s.topP
	resp, err := s.provider.Complete(ctx, llm.Request{
		SystemPrompt: systemPrompt,
		Prompt:       prompt,
		Model:        s.model,
		MaxTokens:    s.maxTokens,
		Temperature:  &temperature,
		TopP:         &topP,
	})
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	return parseResult(resp.Content)
}
