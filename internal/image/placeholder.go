package image

import (
	"fmt"
	"strings"

	"codeberg.org/ilkow/promoshot/internal/promo"
)

const placeholderBaseURL = "https://via.placeholder.com"

// Placeholder labels for the three degraded outcomes.
const (
	labelNoAPIKey     = "No API Key"
	labelNoImageFound = "No Image Found"
	labelLoadError    = "Error Loading Image"
)

// placeholderURL builds a deterministic stand-in image URL sized for the
// requested aspect ratio.
func placeholderURL(ratio promo.AspectRatio, label string) string {
	w, h := ratio.Dimensions()
	return fmt.Sprintf("%s/%dx%d?text=%s", placeholderBaseURL, w, h,
		strings.ReplaceAll(label, " ", "+"))
}
