package ai

import "context"

// Candidate is the slice of a search result the concierge is allowed to see.
type Candidate struct {
	Name    string
	Cuisine string
	City    string
	Rating  float64
}

// Provider defines the contract for the dining concierge model.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type Provider interface {
	// Recommend composes a short conversational recommendation for the
	// user's message, grounded on the candidate restaurants.
	Recommend(ctx context.Context, message string, candidates []Candidate) (string, error)
}
