package compose

import (
	"regexp"
	"strings"
)

// tokenPattern splits text into word and whitespace tokens, keeping the
// whitespace so spacing between words survives wrapping exactly.
var tokenPattern = regexp.MustCompile(`\S+|\s+`)

// measureFunc reports the rendered width of a string in pixels.
type measureFunc func(s string) float64

// wrapLines greedily fills lines up to maxWidth. A token that would push
// the current line past maxWidth starts a new line, unless it is the
// first token of that line: a single token wider than maxWidth is kept
// whole and overflows. Mid-token breaking is intentionally not done, so
// overlong unbreakable words are a known limitation rather than being
// hyphenated.
func wrapLines(text string, maxWidth float64, measure measureFunc) []string {
	tokens := tokenPattern.FindAllString(text, -1)
	if len(tokens) == 0 {
		return nil
	}

	var lines []string
	current := ""

	for _, token := range tokens {
		tentative := current + token
		if measure(tentative) > maxWidth && current != "" {
			lines = append(lines, strings.TrimSpace(current))
			current = token
		} else {
			current = tentative
		}
	}

	return append(lines, strings.TrimSpace(current))
}
