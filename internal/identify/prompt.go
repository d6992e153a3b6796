// Copyright 2026 The Plotsleuth Authors
// SPDX-License-Identifier: MIT

package identify

import "strings"

// systemPrompt is the system instruction sent with every identification
// request.
const systemPrompt = "You are a helpful assistant."

// buildIdentifyPrompt constructs the prompt sent to the LLM for movie
// identification. It establishes the assistant's role, embeds the plot text
// verbatim, and instructs the model to respond with a JSON object using
// exactly the keys movie_name, release_date, rationale, and confidence.
// Pure and deterministic: the same plot always yields the same prompt.
func buildIdentifyPrompt(plot string) string {
	var b strings.Builder

	b.WriteString("You are a world-class movie identification assistant. Given a plot ")
	b.WriteString("description, you search the internet for clues (even though you rely ")
	b.WriteString("on your own knowledge) and deduce the most likely movie. You must ")
	b.WriteString("provide four fields: movie_name, release_date, rationale, and ")
	b.WriteString("confidence. The rationale should explain why the selected movie fits ")
	b.WriteString("the description, referencing key plot points, actors, or unique ")
	b.WriteString("elements. Confidence should be a float between 0 and 1 representing ")
	b.WriteString("your certainty.\n\n")
	b.WriteString("Plot: ")
	b.WriteString(plot)
	b.WriteString("\n\n")
	b.WriteString("Respond with a JSON object using these exact keys: movie_name, ")
	b.WriteString("release_date, rationale, confidence.")

	return b.String()
}
