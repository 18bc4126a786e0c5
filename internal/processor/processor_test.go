package processor

import (
	"bytes"
	"image/png"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/ilkow/promoshot/internal/cli"
	imgsearch "codeberg.org/ilkow/promoshot/internal/image"
	"codeberg.org/ilkow/promoshot/internal/testutil"
)

func newTestProcessor(t *testing.T) (*Processor, *httptest.Server) {
	t.Helper()

	server := testutil.NewImageServer(t, testutil.GeneratePNG(t, 120, 120))

	flags := cli.NewFlags()
	flags.OutputDir = t.TempDir()

	proc, err := NewProcessor(flags)
	if err != nil {
		t.Fatalf("NewProcessor failed: %v", err)
	}

	proc.resolver = imgsearch.NewResolver(testutil.SingleResultSearcher(server.URL), nil)
	return proc, server
}

func TestNewProcessor_UnknownProvider(t *testing.T) {
	flags := cli.NewFlags()
	flags.Provider = "bing"

	if _, err := NewProcessor(flags); err == nil {
		t.Error("Expected error for unknown image provider")
	}
}

func TestGenerate(t *testing.T) {
	proc, _ := newTestProcessor(t)

	path, err := proc.Generate("완전 맛있는 비건 버거 할인")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if filepath.Base(path) != "promo-image-with-text.png" {
		t.Errorf("Unexpected artifact name: %s", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read artifact: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("Artifact is not valid PNG: %v", err)
	}

	// Keywords and attribution are saved next to the artifact
	dir := filepath.Dir(path)

	if !strings.Contains(filepath.Base(dir), "비건") {
		t.Errorf("Expected sanitized caption in directory name, got %s", filepath.Base(dir))
	}

	keywords, err := os.ReadFile(filepath.Join(dir, "keywords.txt"))
	if err != nil {
		t.Fatalf("Failed to read keywords file: %v", err)
	}
	if !strings.Contains(string(keywords), "burger") {
		t.Errorf("Expected keywords to contain 'burger', got %q", string(keywords))
	}

	attribution, err := os.ReadFile(filepath.Join(dir, "attribution.txt"))
	if err != nil {
		t.Fatalf("Failed to read attribution file: %v", err)
	}
	if !strings.Contains(string(attribution), "Mock") {
		t.Errorf("Unexpected attribution: %q", string(attribution))
	}
}

func TestGenerate_EmptyText(t *testing.T) {
	proc, _ := newTestProcessor(t)

	if _, err := proc.Generate("   "); err == nil {
		t.Error("Expected error for empty caption")
	}
}

func TestGenerate_InvalidRatio(t *testing.T) {
	proc, _ := newTestProcessor(t)
	proc.flags.Ratio = "5:7"

	if _, err := proc.Generate("버거"); err == nil {
		t.Error("Expected error for unsupported ratio")
	}
}

func TestGenerate_UnreachableBackgroundRecordsURL(t *testing.T) {
	proc, _ := newTestProcessor(t)

	errServer := testutil.NewStatusServer(t, 404)
	proc.resolver = imgsearch.NewResolver(testutil.SingleResultSearcher(errServer.URL), nil)

	path, err := proc.Generate("버거 할인")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if filepath.Base(path) != "background-url.txt" {
		t.Errorf("Unexpected artifact name: %s", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read recorded URL: %v", err)
	}
	if strings.TrimSpace(string(data)) != errServer.URL {
		t.Errorf("Expected recorded URL %s, got %q", errServer.URL, string(data))
	}
}

func TestProcessBatch(t *testing.T) {
	proc, _ := newTestProcessor(t)

	batchFile := filepath.Join(t.TempDir(), "captions.txt")
	content := "완전 맛있는 비건 버거 할인\n오늘만 50% 할인 @ 9:16\n"
	if err := os.WriteFile(batchFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write batch file: %v", err)
	}
	proc.flags.BatchFile = batchFile

	if err := proc.ProcessBatch(); err != nil {
		t.Fatalf("ProcessBatch failed: %v", err)
	}

	entries, err := os.ReadDir(proc.flags.OutputDir)
	if err != nil {
		t.Fatalf("Failed to list output directory: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected 2 output directories, got %d", len(entries))
	}

	// The ratio override must not leak into later runs
	if proc.flags.Ratio != "1:1" {
		t.Errorf("Default ratio not restored, got %s", proc.flags.Ratio)
	}
}

func TestGenerate_SkipText(t *testing.T) {
	proc, _ := newTestProcessor(t)
	proc.flags.SkipText = true

	path, err := proc.Generate("버거 할인")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if filepath.Base(path) != "promo-image-background.png" {
		t.Errorf("Unexpected artifact name: %s", filepath.Base(path))
	}
}
