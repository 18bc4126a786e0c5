package internal

import (
	"strings"
	"testing"
)

func TestGenerateRequestID(t *testing.T) {
	id := GenerateRequestID("완전 맛있는 비건 버거 할인")

	parts := strings.Split(id, "_")
	if len(parts) != 2 {
		t.Fatalf("Expected epoch_hash format, got %s", id)
	}
	if len(parts[1]) != 8 {
		t.Errorf("Expected 8-character hash, got %s", parts[1])
	}

	other := GenerateRequestID("오늘만 50% 할인")
	if strings.Split(other, "_")[1] == parts[1] {
		t.Error("Expected different hashes for different captions")
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"완전 맛있는 비건 버거", "완전_맛있는_비건_버거"},
		{"50% off!", "50__off_"},
		{"simple-name_ok", "simple-name_ok"},
	}

	for _, tt := range tests {
		if got := SanitizeFilename(tt.input); got != tt.expected {
			t.Errorf("SanitizeFilename(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
