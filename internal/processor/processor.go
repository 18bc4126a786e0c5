package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"codeberg.org/ilkow/promoshot/internal"
	"codeberg.org/ilkow/promoshot/internal/batch"
	"codeberg.org/ilkow/promoshot/internal/cli"
	"codeberg.org/ilkow/promoshot/internal/compose"
	"codeberg.org/ilkow/promoshot/internal/image"
	"codeberg.org/ilkow/promoshot/internal/keyword"
	"codeberg.org/ilkow/promoshot/internal/promo"
)

// Processor handles the main generation logic
type Processor struct {
	flags      *cli.Flags
	refiner    *keyword.Refiner
	resolver   *image.Resolver
	downloader *image.Downloader
	compositor *compose.Compositor
}

// NewProcessor creates a new generation processor. A missing image API
// credential is not an error: the resolver then serves placeholders.
func NewProcessor(flags *cli.Flags) (*Processor, error) {
	searcher, err := NewSearcher(flags.Provider)
	if err != nil {
		return nil, err
	}

	return &Processor{
		flags:      flags,
		refiner:    keyword.NewRefiner(cli.GetOpenAIKey()),
		resolver:   image.NewResolver(searcher, nil),
		downloader: image.NewDownloader(nil),
		compositor: compose.New(),
	}, nil
}

// NewSearcher builds the configured search provider, or nil when no
// credential is available (placeholder mode).
func NewSearcher(provider string) (image.Searcher, error) {
	switch provider {
	case "unsplash":
		key := cli.GetUnsplashKey()
		if key == "" {
			fmt.Fprintln(os.Stderr, "Warning: UNSPLASH_ACCESS_KEY not set, using placeholder images")
			return nil, nil
		}
		return image.NewUnsplashClient(key)

	case "pixabay":
		key := cli.GetPixabayKey()
		if key == "" {
			fmt.Fprintln(os.Stderr, "Warning: PIXABAY_API_KEY not set, using placeholder images")
			return nil, nil
		}
		return image.NewPixabayClient(key)

	default:
		return nil, fmt.Errorf("unknown image provider: %s", provider)
	}
}

// ProcessBatch generates images for every caption in the batch file.
// Individual failures are reported and skipped.
func (p *Processor) ProcessBatch() error {
	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	processedCount := 0
	errorCount := 0

	defaultRatio := p.flags.Ratio
	for i, entry := range entries {
		fmt.Printf("\nProcessing %d/%d: %s\n", i+1, len(entries), entry.Text)

		p.flags.Ratio = defaultRatio
		if entry.Ratio != "" {
			p.flags.Ratio = entry.Ratio
		}

		if _, err := p.Generate(entry.Text); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing '%s': %v\n", entry.Text, err)
			errorCount++
		} else {
			processedCount++
		}
	}
	p.flags.Ratio = defaultRatio

	fmt.Printf("\n=== Batch Summary ===\n")
	fmt.Printf("Total captions: %d\n", len(entries))
	fmt.Printf("Processed: %d\n", processedCount)
	if errorCount > 0 {
		fmt.Printf("Errors: %d\n", errorCount)
	}
	fmt.Printf("=====================\n")

	return nil
}

// Generate runs the full pipeline for a single caption and returns the
// path of the written artifact.
func (p *Processor) Generate(text string) (string, error) {
	req, err := promo.NewRequest(text, p.flags.Ratio)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	gen := promo.NewGeneration()

	fmt.Printf("\nGenerating promo image for: %s\n", req.Text)

	keywords := p.translateKeywords(ctx, req.Text)
	fmt.Printf("  Keywords: %s\n", keywords.Query())

	result := p.resolver.Resolve(ctx, keywords, req.Ratio)
	if err := gen.Complete(result.URL, result.SourceDescription); err != nil {
		return "", err
	}
	if result.Placeholder {
		fmt.Fprintf(os.Stderr, "  Warning: no real image available (%s), using placeholder\n", result.SourceDescription)
	} else {
		fmt.Printf("  Image: %s\n", result.SourceDescription)
	}

	outDir, err := p.createRequestDirectory(req.Text)
	if err != nil {
		return "", err
	}

	if err := p.saveKeywords(outDir, keywords); err != nil {
		fmt.Fprintf(os.Stderr, "  Warning: failed to save keywords: %v\n", err)
	}

	artifactPath, err := p.writeArtifact(ctx, outDir, result, req.Text)
	if err != nil {
		return "", err
	}

	fmt.Printf("  Saved: %s\n", artifactPath)
	return artifactPath, nil
}

// translateKeywords applies the dictionary translator and, when enabled
// and configured, the OpenAI refiner. Refinement failures fall back to
// the dictionary terms.
func (p *Processor) translateKeywords(ctx context.Context, text string) keyword.Set {
	keywords := keyword.Translate(text)

	if p.flags.Refine {
		refined, err := p.refiner.Refine(ctx, text, keywords)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  Warning: keyword refinement failed: %v\n", err)
			return keywords
		}
		return refined
	}

	return keywords
}

// writeArtifact produces the downloadable file: the composited image, the
// raw background when --skip-text is set, or the degraded background
// passthrough when the image cannot be decoded.
func (p *Processor) writeArtifact(ctx context.Context, outDir string, result image.Result, caption string) (string, error) {
	if err := image.SaveAttribution(outDir, result.SourceDescription); err != nil {
		fmt.Fprintf(os.Stderr, "  Warning: %v\n", err)
	}

	if p.flags.SkipText {
		data, err := p.downloader.Fetch(ctx, result.URL)
		if err != nil {
			return "", fmt.Errorf("background download failed: %w", err)
		}
		path := filepath.Join(outDir, compose.FallbackArtifactName)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return "", fmt.Errorf("failed to write background: %w", err)
		}
		return path, nil
	}

	artifact, err := p.compositor.Export(ctx, result.URL, caption)
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}

	// Unfetchable background: record the source URL instead of aborting
	if artifact.RemoteURL != "" {
		fmt.Fprintln(os.Stderr, "  Warning: background image could not be loaded, recording its URL instead")
		path := filepath.Join(outDir, "background-url.txt")
		if err := os.WriteFile(path, []byte(artifact.RemoteURL+"\n"), 0644); err != nil {
			return "", fmt.Errorf("failed to record image URL: %w", err)
		}
		return path, nil
	}

	if artifact.Degraded {
		fmt.Fprintln(os.Stderr, "  Warning: text could not be overlaid, downloading the background image instead")
	}

	path := filepath.Join(outDir, artifact.Filename)
	if err := os.WriteFile(path, artifact.Data, 0644); err != nil {
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}

	return path, nil
}

// createRequestDirectory makes a unique directory for this generation's
// artifacts under the output directory. The caption is appended in
// sanitized form so directories stay recognizable.
func (p *Processor) createRequestDirectory(text string) (string, error) {
	slug := internal.SanitizeFilename(text)
	if r := []rune(slug); len(r) > 24 {
		slug = string(r[:24])
	}

	dirName := internal.GenerateRequestID(text) + "_" + slug
	outDir := filepath.Join(p.flags.OutputDir, dirName)

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	return outDir, nil
}

// saveKeywords records the search terms used, for reproducibility.
func (p *Processor) saveKeywords(dir string, keywords keyword.Set) error {
	path := filepath.Join(dir, "keywords.txt")
	return os.WriteFile(path, []byte(keywords.Query()+"\n"), 0644)
}
