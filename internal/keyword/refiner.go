package keyword

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Refiner improves dictionary-derived search terms using the OpenAI API.
// It is optional: callers fall back to the dictionary terms on any error.
type Refiner struct {
	apiKey string
	client *openai.Client
}

// NewRefiner creates a new keyword refiner instance
func NewRefiner(apiKey string) *Refiner {
	return &Refiner{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// Refine asks the chat API for better English stock photo search terms
// for the given Korean caption. The dictionary terms are passed along as
// a hint. Returns at most four terms.
func (r *Refiner) Refine(ctx context.Context, caption string, base Set) (Set, error) {
	if r.apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key not found")
	}

	req := openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(
					"Suggest up to 4 English stock photo search keywords for this Korean promotional text: '%s'. "+
						"Current keywords: '%s'. Respond with only the keywords separated by single spaces, nothing else.",
					caption, base.Query()),
			},
		},
		MaxTokens:   50,
		Temperature: 0.3,
	}

	resp, err := r.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no keywords returned")
	}

	terms := strings.Fields(strings.ToLower(resp.Choices[0].Message.Content))
	if len(terms) == 0 {
		return nil, fmt.Errorf("empty keyword response")
	}
	if len(terms) > maxTerms {
		terms = terms[:maxTerms]
	}

	return Set(terms), nil
}
