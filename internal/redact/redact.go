// Copyright 2026 The Plotsleuth Authors
// SPDX-License-Identifier: MIT

// Package redact strips API credentials from strings before they appear in
// responses, logs, or error messages. Upstream errors are surfaced to callers
// verbatim, so anything the SDK echoes back must be scrubbed first.
package redact

import (
	"os"
	"strings"
	"sync"
)

// sensitiveEnvVars lists environment variable names whose values must never
// appear in output.
var sensitiveEnvVars = []string{
	"ANTHROPIC_API_KEY",
	"OPENAI_API_KEY",
}

var (
	cachedSecrets []string
	cacheOnce     sync.Once
)

func loadSecrets() {
	for _, envVar := range sensitiveEnvVars {
		val := os.Getenv(envVar)
		if val != "" && len(val) >= 4 {
			cachedSecrets = append(cachedSecrets, val)
		}
	}
}

// ResetForTest resets the cached secrets so tests can verify redaction
// behavior after setting env vars with t.Setenv.
func ResetForTest() {
	cachedSecrets = nil
	cacheOnce = sync.Once{}
}

// String replaces any occurrence of a known sensitive environment variable
// value with "[REDACTED]". Returns the original string if no secrets are
// found. Secret values are cached on first call.
func String(s string) string {
	cacheOnce.Do(loadSecrets)
	for _, secret := range cachedSecrets {
		s = strings.ReplaceAll(s, secret, "[REDACTED]")
	}
	return s
}
