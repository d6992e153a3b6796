package main

// Exit codes for the plotsleuth CLI.
const (
	ExitOK          = 0 // Success.
	ExitInvalidArgs = 1 // Invalid arguments, bad config, or missing credential.
	ExitFailure     = 2 // Identification or server runtime failure.
)
