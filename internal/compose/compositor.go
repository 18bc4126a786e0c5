package compose

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
	_ "golang.org/x/image/webp"

	imgsearch "codeberg.org/ilkow/promoshot/internal/image"
)

// Artifact filenames for the success and degraded download paths.
const (
	ArtifactName         = "promo-image-with-text.png"
	FallbackArtifactName = "promo-image-background.png"
)

// Caption layout constants. Font size is relative to the surface width,
// the wrap width leaves a 5% margin on each side.
const (
	fontSizeDivisor = 15
	wrapWidthRatio  = 0.9
	lineHeightRatio = 1.2
	shadowOffsetX   = 2
	shadowOffsetY   = 2
	shadowAlpha     = 0.7
)

// Artifact is a finished downloadable image. Degraded is set when the
// caption could not be overlaid: either the background decoded but not
// as an image (raw bytes in Data), or it could not be fetched at all
// (RemoteURL set, Data empty, the caller serves the URL directly).
type Artifact struct {
	Data      []byte
	Filename  string
	Degraded  bool
	RemoteURL string
}

// Compositor renders captions onto background images.
type Compositor struct {
	downloader *imgsearch.Downloader
	fontData   []byte
}

// New creates a Compositor with the bundled bold font.
func New() *Compositor {
	return &Compositor{
		downloader: imgsearch.NewDownloader(nil),
		fontData:   gobold.TTF,
	}
}

// Export fetches the background image and produces the downloadable
// artifact. Background failures are never fatal: a background that
// fetches but fails to decode degrades to a raw passthrough, and one
// that cannot be fetched at all degrades to its URL so the caller can
// hand the source out directly. Only rendering itself can error.
func (c *Compositor) Export(ctx context.Context, imageURL, caption string) (*Artifact, error) {
	raw, err := c.downloader.Fetch(ctx, imageURL)
	if err != nil {
		return &Artifact{
			Filename:  FallbackArtifactName,
			Degraded:  true,
			RemoteURL: imageURL,
		}, nil
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		// Text cannot be overlaid, hand back the raw background instead
		return &Artifact{
			Data:     raw,
			Filename: FallbackArtifactName,
			Degraded: true,
		}, nil
	}

	data, err := c.Compose(src, caption)
	if err != nil {
		return nil, err
	}

	return &Artifact{Data: data, Filename: ArtifactName}, nil
}

// Compose draws the caption over the image and encodes the result as
// PNG. The surface matches the source image's natural pixel dimensions.
func (c *Compositor) Compose(src image.Image, caption string) ([]byte, error) {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	dc := gg.NewContext(w, h)
	dc.DrawImage(src, 0, 0)

	if err := c.drawCaption(dc, w, h, caption); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}

	return buf.Bytes(), nil
}

// drawCaption word-wraps the caption and renders it centered over the
// vertical midpoint with a soft drop shadow for legibility.
func (c *Compositor) drawCaption(dc *gg.Context, w, h int, caption string) error {
	fontSize := float64(w) / fontSizeDivisor

	f, err := truetype.Parse(c.fontData)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: fontSize}))

	maxWidth := wrapWidthRatio * float64(w)
	lines := wrapLines(caption, maxWidth, func(s string) float64 {
		width, _ := dc.MeasureString(s)
		return width
	})

	lineHeight := lineHeightRatio * fontSize
	totalHeight := lineHeight * float64(len(lines))
	centerX := float64(w) / 2
	startY := float64(h)/2 - totalHeight/2

	for i, line := range lines {
		y := startY + float64(i)*lineHeight

		// gg has no gaussian blur, so the soft shadow is approximated by
		// stacking translucent passes around the base offset.
		dc.SetRGBA(0, 0, 0, shadowAlpha/4)
		for _, d := range [][2]float64{{-2, 0}, {2, 0}, {0, -2}, {0, 2}} {
			dc.DrawStringAnchored(line, centerX+shadowOffsetX+d[0], y+shadowOffsetY+d[1], 0.5, 0.5)
		}
		dc.SetRGBA(0, 0, 0, shadowAlpha)
		dc.DrawStringAnchored(line, centerX+shadowOffsetX, y+shadowOffsetY, 0.5, 0.5)

		dc.SetRGB(1, 1, 1)
		dc.DrawStringAnchored(line, centerX, y, 0.5, 0.5)
	}

	return nil
}
