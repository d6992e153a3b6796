// Copyright 2026 The Plotsleuth Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/davetashner/plotsleuth/internal/mcpserver"
)

// MCP-specific flag values.
var (
	mcpConfig string
	mcpModel  string
)

// mcpCmd is the parent command for MCP-related subcommands.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server commands",
	Long:  "Commands for running plotsleuth as an MCP server, exposing the identify tool to AI agents.",
}

// mcpServeCmd runs the MCP server over stdio.
var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Start an MCP server on stdin/stdout, exposing plotsleuth's identify tool.

The server communicates using the Model Context Protocol (MCP) over stdio
transport, enabling AI agents to identify movies from plot descriptions
directly. Requires ANTHROPIC_API_KEY in the environment.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := resolveConfig(mcpConfig, "", mcpModel)
		if err != nil {
			return exitError(ExitInvalidArgs, "plotsleuth: %v", err)
		}

		provider, err := newLLMProvider()
		if err != nil {
			return exitError(ExitInvalidArgs, "plotsleuth: %v", err)
		}

		svc := newIdentifyService(provider, cfg)
		return mcpserver.Run(cmd.Context(), Version, svc, &mcp.StdioTransport{})
	},
}

func init() {
	mcpServeCmd.Flags().StringVar(&mcpConfig, "config", "", "path to a config file (default: .plotsleuth.yaml in the working directory)")
	mcpServeCmd.Flags().StringVarP(&mcpModel, "model", "m", "", "override the LLM model")

	mcpCmd.AddCommand(mcpServeCmd)
}
