package cli

import (
	"testing"

	"github.com/spf13/viper"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	if cmd == nil {
		t.Fatal("CreateRootCommand returned nil")
	}

	if cmd.Use != "promoshot [text]" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	for _, name := range []string{"output", "ratio", "image-api", "refine", "skip-text", "batch", "archive"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected flag --%s to be registered", name)
		}
	}

	if cmd.PersistentFlags().Lookup("config") == nil {
		t.Error("Expected persistent flag --config to be registered")
	}
}

func TestRootCommandFlagParsing(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	if err := cmd.ParseFlags([]string{"--ratio", "9:16", "-o", "/tmp/out"}); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if flags.Ratio != "9:16" {
		t.Errorf("Expected ratio '9:16', got '%s'", flags.Ratio)
	}

	if flags.OutputDir != "/tmp/out" {
		t.Errorf("Expected output dir '/tmp/out', got '%s'", flags.OutputDir)
	}
}

func TestCreateServeCommand(t *testing.T) {
	flags := NewFlags()
	ran := false
	cmd := CreateServeCommand(flags, func() error {
		ran = true
		return nil
	})

	if err := cmd.ParseFlags([]string{"--listen", ":9999"}); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if flags.Listen != ":9999" {
		t.Errorf("Expected listen ':9999', got '%s'", flags.Listen)
	}

	if err := cmd.RunE(cmd, nil); err != nil {
		t.Fatalf("RunE failed: %v", err)
	}
	if !ran {
		t.Error("Expected serve run function to be called")
	}
}

func TestCreateModelsCommand(t *testing.T) {
	ran := false
	cmd := CreateModelsCommand(func() error {
		ran = true
		return nil
	})

	if err := cmd.RunE(cmd, nil); err != nil {
		t.Fatalf("RunE failed: %v", err)
	}
	if !ran {
		t.Error("Expected models run function to be called")
	}
}

func TestGetUnsplashKey_Environment(t *testing.T) {
	t.Setenv("UNSPLASH_ACCESS_KEY", "env-key")

	if key := GetUnsplashKey(); key != "env-key" {
		t.Errorf("Expected 'env-key', got '%s'", key)
	}
}

func TestGetUnsplashKey_Config(t *testing.T) {
	t.Setenv("UNSPLASH_ACCESS_KEY", "")
	viper.Set("image.unsplash_key", "config-key")
	defer viper.Set("image.unsplash_key", "")

	if key := GetUnsplashKey(); key != "config-key" {
		t.Errorf("Expected 'config-key', got '%s'", key)
	}
}

func TestGetOpenAIKey_Environment(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "openai-env-key")

	if key := GetOpenAIKey(); key != "openai-env-key" {
		t.Errorf("Expected 'openai-env-key', got '%s'", key)
	}
}
