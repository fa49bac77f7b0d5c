package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-2.0-flash"

// refineSystemPrompt frames the follow-up generation call. The transcript of
// the conversation so far is injected below it.
const refineSystemPrompt = "You are a helpful travel planning assistant. " +
	"Refine the itinerary based on the user's requests and the previous conversation history."

// GeminiProvider implements TextGenerator using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: missing api key")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(geminiModel)

	// Deterministic output: the prompt already pins the structure, temperature 0
	// keeps repeated plans for the same inputs stable.
	model.SetTemperature(0)
	model.SetMaxOutputTokens(2048)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// GenerateItinerary sends the planning prompt and returns the itinerary text.
func (p *GeminiProvider) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("gemini: empty prompt")
	}
	return p.generate(ctx, prompt)
}

// RefineItinerary asks the model for a revised itinerary given the
// conversation so far and the user's latest request.
func (p *GeminiProvider) RefineItinerary(ctx context.Context, transcript, input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", fmt.Errorf("gemini: empty refinement input")
	}

	var b strings.Builder
	b.WriteString(refineSystemPrompt)
	if transcript != "" {
		b.WriteString("\n\nConversation so far:\n")
		b.WriteString(transcript)
	}
	b.WriteString("\n\nUser: ")
	b.WriteString(input)

	return p.generate(ctx, b.String())
}

func (p *GeminiProvider) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var textParts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		txt, ok := part.(genai.Text)
		if !ok || strings.TrimSpace(string(txt)) == "" {
			continue
		}
		textParts = append(textParts, string(txt))
	}
	if len(textParts) == 0 {
		return "", fmt.Errorf("gemini: API returned empty text parts")
	}

	return strings.Join(textParts, "\n"), nil
}
