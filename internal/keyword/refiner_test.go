package keyword

import (
	"context"
	"os"
	"testing"
)

func TestNewRefiner(t *testing.T) {
	refiner := NewRefiner("test-api-key")

	if refiner == nil {
		t.Fatal("NewRefiner returned nil")
	}

	if refiner.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", refiner.apiKey)
	}

	if refiner.client == nil {
		t.Error("OpenAI client not initialized")
	}
}

func TestRefine_NoAPIKey(t *testing.T) {
	refiner := NewRefiner("")

	_, err := refiner.Refine(context.Background(), "비건 버거 할인", Set{"vegan", "burger"})
	if err == nil {
		t.Error("Expected error for missing API key")
	}

	if err.Error() != "OpenAI API key not found" {
		t.Errorf("Expected 'OpenAI API key not found' error, got: %v", err)
	}
}

func TestRefine_Integration(t *testing.T) {
	// Skip if no API key
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	refiner := NewRefiner(apiKey)

	terms, err := refiner.Refine(context.Background(), "세상에서 가장 맛있는 비건 버거", Set{"vegan", "burger"})
	if err != nil {
		t.Fatalf("Refine failed: %v", err)
	}

	if len(terms) == 0 {
		t.Error("Got empty keyword set")
	}
	if len(terms) > 4 {
		t.Errorf("Expected at most 4 terms, got %d", len(terms))
	}

	t.Logf("Refined keywords: %v", terms)
}
