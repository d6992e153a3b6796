// Copyright 2026 The Plotsleuth Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/davetashner/plotsleuth/internal/identify"
)

// Identify-specific flag values.
var (
	identifyConfig string
	identifyModel  string
	identifyJSON   bool
)

// identifyCmd identifies a movie from the command line.
var identifyCmd = &cobra.Command{
	Use:   "identify <plot description>",
	Short: "Identify a movie from a plot description",
	Long: `Identify a movie from a free-text plot description and print the result.

Multiple arguments are joined with spaces, so quoting the whole plot is
optional:

  plotsleuth identify a thief who steals secrets through dream-sharing

Requires ANTHROPIC_API_KEY in the environment.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIdentify,
}

func init() {
	identifyCmd.Flags().StringVar(&identifyConfig, "config", "", "path to a config file (default: .plotsleuth.yaml in the working directory)")
	identifyCmd.Flags().StringVarP(&identifyModel, "model", "m", "", "override the LLM model")
	identifyCmd.Flags().BoolVar(&identifyJSON, "json", false, "print the raw JSON result")
}

func runIdentify(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(identifyConfig, "", identifyModel)
	if err != nil {
		return exitError(ExitInvalidArgs, "plotsleuth: %v", err)
	}

	provider, err := newLLMProvider()
	if err != nil {
		return exitError(ExitInvalidArgs, "plotsleuth: %v", err)
	}

	svc := newIdentifyService(provider, cfg)
	plot := strings.Join(args, " ")

	result, err := svc.Identify(cmd.Context(), plot)
	if err != nil {
		return exitError(ExitFailure, "plotsleuth: %v", err)
	}

	if identifyJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printResult(cmd.OutOrStdout(), result)
	return nil
}

// Shared color printers for identify output.
var (
	colorBold   = color.New(color.Bold)
	colorGreen  = color.New(color.FgGreen)
	colorYellow = color.New(color.FgYellow)
	colorRed    = color.New(color.FgRed)
)

func printResult(w io.Writer, result *identify.Result) {
	fmt.Fprintf(w, "%s (%s)\n", colorBold.Sprint(result.MovieName), result.ReleaseDate)
	fmt.Fprintf(w, "confidence: %s\n", colorConfidence(result.Confidence))
	fmt.Fprintf(w, "\n%s\n", result.Rationale)
}

// colorConfidence colors the confidence score by certainty band.
func colorConfidence(c float64) string {
	val := fmt.Sprintf("%.2f", c)
	switch {
	case c >= 0.8:
		return colorGreen.Sprint(val)
	case c >= 0.5:
		return colorYellow.Sprint(val)
	default:
		return colorRed.Sprint(val)
	}
}
