// Copyright 2026 The Plotsleuth Authors
// SPDX-License-Identifier: MIT

// Package mcpserver runs plotsleuth as an MCP server, exposing movie
// identification as a tool AI agents can call directly.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davetashner/plotsleuth/internal/identify"
)

// New creates a new MCP server with the identify tool registered.
func New(version string, svc *identify.Service) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "plotsleuth",
		Title:   "Plotsleuth — Movie Identification",
		Version: version,
	}, nil)

	registerTools(server, svc)
	return server
}

// Run creates an MCP server and runs it on the given transport.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context, version string, svc *identify.Service, transport mcp.Transport) error {
	server := New(version, svc)
	return server.Run(ctx, transport)
}
