package cli

import "testing"

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	if flags == nil {
		t.Fatal("NewFlags returned nil")
	}

	if flags.Ratio != "1:1" {
		t.Errorf("Expected default ratio '1:1', got '%s'", flags.Ratio)
	}

	if flags.Provider != "unsplash" {
		t.Errorf("Expected default provider 'unsplash', got '%s'", flags.Provider)
	}

	if flags.Listen != ":8080" {
		t.Errorf("Expected default listen ':8080', got '%s'", flags.Listen)
	}

	if flags.Refine {
		t.Error("Expected refine to default to false")
	}
}
