// Copyright 2026 The Plotsleuth Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"testing"

	"github.com/davetashner/plotsleuth/internal/llm"
	"github.com/spf13/cobra"
)

// newTestCmd redirects the global rootCmd's I/O to fresh buffers. We reuse
// rootCmd because the subcommands are wired to it via init().
func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	// Clear contexts left by earlier executions: cobra only propagates the
	// root's context to a subcommand whose ctx is still nil, so a stale ctx
	// from a prior Execute() would hide the one passed to ExecuteContext.
	rootCmd.SetContext(nil)
	for _, c := range rootCmd.Commands() {
		c.SetContext(nil)
	}
	return rootCmd, stdout, stderr
}

// withMockProvider swaps the provider constructor for the given provider and
// restores it on test cleanup.
func withMockProvider(t *testing.T, provider llm.Provider) {
	t.Helper()
	orig := newLLMProvider
	newLLMProvider = func() (llm.Provider, error) {
		return provider, nil
	}
	t.Cleanup(func() { newLLMProvider = orig })
}

// withProviderError makes the provider constructor fail with err.
func withProviderError(t *testing.T, err error) {
	t.Helper()
	orig := newLLMProvider
	newLLMProvider = func() (llm.Provider, error) {
		return nil, err
	}
	t.Cleanup(func() { newLLMProvider = orig })
}

// resetIdentifyFlags restores identify command flags to their defaults.
func resetIdentifyFlags() {
	identifyConfig = ""
	identifyModel = ""
	identifyJSON = false
}

// resetServeFlags restores serve command flags to their defaults.
func resetServeFlags() {
	serveListen = ""
	serveConfig = ""
	serveModel = ""
}
