// Copyright 2026 The Plotsleuth Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davetashner/plotsleuth/internal/identify"
)

// IdentifyInput is the input schema for the plotsleuth identify MCP tool.
type IdentifyInput struct {
	Plot string `json:"plot" jsonschema:"Natural language description of a movie plot"`
}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

// registerTools adds the identify tool to the MCP server, backed by svc.
func registerTools(server *mcp.Server, svc *identify.Service) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "identify",
		Description: "Identify a movie from a free-text plot description. Returns the title, release date, rationale, and a confidence score.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(true),
		},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input IdentifyInput) (*mcp.CallToolResult, any, error) {
		return handleIdentify(ctx, svc, input)
	})
}

func handleIdentify(ctx context.Context, svc *identify.Service, input IdentifyInput) (*mcp.CallToolResult, any, error) {
	result, err := svc.Identify(ctx, input.Plot)
	if err != nil {
		return nil, nil, fmt.Errorf("identification failed: %w", err)
	}

	data, err := json.Marshal(result)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding result: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, result, nil
}
