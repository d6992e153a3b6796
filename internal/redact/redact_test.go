// Copyright 2026 The Plotsleuth Authors
// SPDX-License-Identifier: MIT

package redact

import (
	"testing"
)

func TestString_RedactsAPIKey(t *testing.T) {
	const secret = "sk-ant-REDACTED" //nolint:gosec // fake test credential
	t.Setenv("ANTHROPIC_API_KEY", secret)
	ResetForTest()
	t.Cleanup(ResetForTest)

	input := "anthropic: completion failed: invalid key " + secret + " rejected"
	got := String(input)

	if got == input {
		t.Error("expected secret to be redacted, but string was unchanged")
	}
	if want := "anthropic: completion failed: invalid key [REDACTED] rejected"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestString_NoSecretsUnchanged(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	ResetForTest()
	t.Cleanup(ResetForTest)

	input := "nothing sensitive here"
	if got := String(input); got != input {
		t.Errorf("got %q, want unchanged input", got)
	}
}

func TestString_ShortValuesNotCached(t *testing.T) {
	// Values shorter than 4 chars are ignored to avoid redacting common
	// substrings.
	t.Setenv("ANTHROPIC_API_KEY", "abc")
	ResetForTest()
	t.Cleanup(ResetForTest)

	input := "abc is fine"
	if got := String(input); got != input {
		t.Errorf("got %q, want unchanged input", got)
	}
}
