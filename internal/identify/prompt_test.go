// Copyright 2026 The Plotsleuth Authors
// SPDX-License-Identifier: MIT

package identify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildIdentifyPrompt_EmbedsPlotVerbatim(t *testing.T) {
	tests := []struct {
		name string
		plot string
	}{
		{name: "simple", plot: "a thief who steals corporate secrets through dream-sharing"},
		{name: "empty", plot: ""},
		{name: "quotes and braces", plot: `he said "run" and then {everything} exploded`},
		{name: "multiline", plot: "a shark terrorizes a beach town.\nThe police chief closes the beaches."},
		{name: "unicode", plot: "un homme amnésique cherche le tueur de sa femme — 記憶"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildIdentifyPrompt(tt.plot)
			assert.Contains(t, got, "Plot: "+tt.plot)
		})
	}
}

func TestBuildIdentifyPrompt_RequestsAllFourKeys(t *testing.T) {
	got := buildIdentifyPrompt("some plot")

	for _, key := range []string{"movie_name", "release_date", "rationale", "confidence"} {
		assert.Contains(t, got, key)
	}
	assert.Contains(t, got, "Respond with a JSON object using these exact keys")
}

func TestBuildIdentifyPrompt_Deterministic(t *testing.T) {
	plot := "a computer hacker learns the world is a simulation"

	first := buildIdentifyPrompt(plot)
	second := buildIdentifyPrompt(plot)

	assert.Equal(t, first, second)
}

func TestBuildIdentifyPrompt_EstablishesRole(t *testing.T) {
	got := buildIdentifyPrompt("anything")
	assert.Contains(t, got, "movie identification assistant")
}
