// Copyright 2026 The Plotsleuth Authors
// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/davetashner/plotsleuth/internal/server"
)

// Serve-specific flag values.
var (
	serveListen string
	serveConfig string
	serveModel  string
)

// serveCmd runs the plotsleuth HTTP API server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the plotsleuth HTTP API server",
	Long: `Start the HTTP server exposing POST /api/identify. The endpoint accepts a
JSON body {"User_query": "<plot text>"} and responds with the identified
movie's name, release date, rationale, and confidence.

Requires ANTHROPIC_API_KEY in the environment; the server refuses to start
without it.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveListen, "listen", "l", "", "listen address (default \":8080\", or the config file's value)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "path to a config file (default: .plotsleuth.yaml in the working directory)")
	serveCmd.Flags().StringVarP(&serveModel, "model", "m", "", "override the LLM model")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(serveConfig, serveListen, serveModel)
	if err != nil {
		return exitError(ExitInvalidArgs, "plotsleuth: %v", err)
	}

	provider, err := newLLMProvider()
	if err != nil {
		return exitError(ExitInvalidArgs, "plotsleuth: %v", err)
	}

	svc := newIdentifyService(provider, cfg)
	srv := server.New(cfg.Listen, svc, cfg.CORSOrigins, slog.Default())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("starting plotsleuth", slog.String("version", Version), slog.String("listen", cfg.Listen))
	if err := srv.Run(ctx); err != nil {
		return exitError(ExitFailure, "plotsleuth: %v", err)
	}
	return nil
}
