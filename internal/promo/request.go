package promo

import (
	"fmt"
	"strings"
)

// AspectRatio is one of the five supported output shapes.
type AspectRatio string

const (
	RatioSquare    AspectRatio = "1:1"
	RatioPortrait  AspectRatio = "3:4"
	RatioLandscape AspectRatio = "4:3"
	RatioStory     AspectRatio = "9:16"
	RatioWide      AspectRatio = "16:9"
)

// SupportedRatios lists all valid aspect ratios in display order.
var SupportedRatios = []AspectRatio{RatioSquare, RatioPortrait, RatioLandscape, RatioStory, RatioWide}

// ParseAspectRatio validates a user-supplied ratio string.
func ParseAspectRatio(s string) (AspectRatio, error) {
	for _, r := range SupportedRatios {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unsupported aspect ratio %q (supported: 1:1, 3:4, 4:3, 9:16, 16:9)", s)
}

// Orientation maps the ratio to the coarse hint understood by image search
// providers. Only 9:16, 16:9 and 1:1 have distinct hints; 3:4 and 4:3 both
// fall back to landscape. That collapse matches the original product
// behaviour and is kept on purpose.
func (r AspectRatio) Orientation() string {
	switch r {
	case RatioStory:
		return "portrait"
	case RatioWide:
		return "landscape"
	case RatioSquare:
		return "squarish"
	default:
		return "landscape"
	}
}

// Dimensions returns deterministic pixel dimensions matching the ratio,
// used for placeholder images.
func (r AspectRatio) Dimensions() (width, height int) {
	switch r {
	case RatioSquare:
		return 800, 800
	case RatioPortrait:
		return 720, 960
	case RatioLandscape:
		return 960, 720
	case RatioStory:
		return 720, 1280
	case RatioWide:
		return 1280, 720
	default:
		return 800, 600
	}
}

// Request is a single promotional image generation request. It is
// immutable once a generation run starts.
type Request struct {
	Text  string      // User-supplied caption (Korean free text)
	Ratio AspectRatio // Desired output aspect ratio
}

// NewRequest validates the caption and ratio and builds a Request.
func NewRequest(text, ratio string) (*Request, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("caption text must not be empty")
	}

	r, err := ParseAspectRatio(ratio)
	if err != nil {
		return nil, err
	}

	return &Request{Text: text, Ratio: r}, nil
}
