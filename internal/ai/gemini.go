package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements Provider using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Use Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")

	// Set a reasonable temperature for friendly but grounded replies.
	model.SetTemperature(0.4)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// Recommend asks the model for a short recommendation. The model only sees
// the candidates we pass in, so it cannot invent restaurants.
func (p *GeminiProvider) Recommend(ctx context.Context, message string, candidates []Candidate) (string, error) {
	prompt := buildPrompt(message, candidates)

	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty gemini response")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	reply := strings.TrimSpace(b.String())
	if reply == "" {
		return "", fmt.Errorf("empty gemini response")
	}
	return reply, nil
}

func buildPrompt(message string, candidates []Candidate) string {
	var b strings.Builder
	b.WriteString("You are a friendly dining concierge for a restaurant discovery app. ")
	b.WriteString("Recommend at most two of the restaurants below that best fit the request. ")
	b.WriteString("Reply in two or three sentences. Never mention restaurants that are not in the list.\n\n")
	b.WriteString("Request: ")
	b.WriteString(message)
	b.WriteString("\n\nRestaurants:\n")
	for _, c := range candidates {
		fmt.Fprintf(&b, "- %s (%s, %s, rated %.1f)\n", c.Name, c.Cuisine, c.City, c.Rating)
	}
	if len(candidates) == 0 {
		b.WriteString("(none found: apologise briefly and suggest broadening the search)\n")
	}
	return b.String()
}
