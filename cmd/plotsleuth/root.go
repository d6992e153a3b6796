package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	plotlog "github.com/davetashner/plotsleuth/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// rootCmd is the base command for plotsleuth.
var rootCmd = &cobra.Command{
	Use:   "plotsleuth",
	Short: "Identify movies from plot descriptions",
	Long: `Plotsleuth identifies movies from free-text plot descriptions by
delegating reasoning to an LLM completion API. It returns the most likely
title together with its release date, a rationale, and a confidence score.

Run it as an HTTP service ('plotsleuth serve'), as a one-shot CLI lookup
('plotsleuth identify'), or as an MCP server for AI agents ('plotsleuth mcp
serve').`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		plotlog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(identifyCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError.
func exitError(code int, format string, args ...any) *exitCodeError {
	return &exitCodeError{code: code, msg: fmt.Sprintf(format, args...)}
}
