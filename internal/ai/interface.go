package ai

import (
	"context"
)

// TextGenerator defines the contract for the itinerary generation step.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type TextGenerator interface {
	// GenerateItinerary sends a fully-assembled planning prompt and returns the
	// generated itinerary text.
	GenerateItinerary(ctx context.Context, prompt string) (string, error)

	// RefineItinerary revises a previously generated itinerary. transcript is
	// the flattened conversation so far; input is the user's latest request.
	RefineItinerary(ctx context.Context, transcript, input string) (string, error)
}
