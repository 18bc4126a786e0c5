package batch

import (
	"fmt"
	"os"
	"strings"
)

// Entry represents one caption with an optional aspect ratio override.
type Entry struct {
	Text  string
	Ratio string // empty means use the default from flags
}

// ReadBatchFile reads captions from a file, one per line.
// Supported formats:
//   - caption only: "완전 맛있는 비건 버거 할인"
//   - with ratio: "오늘만 50% 할인 @ 9:16"
//
// Blank lines and lines starting with '#' are skipped.
func ReadBatchFile(filename string) ([]Entry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var entries []Entry

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Check for the " @ RATIO" suffix
		if idx := strings.LastIndex(line, " @ "); idx > 0 {
			text := strings.TrimSpace(line[:idx])
			ratio := strings.TrimSpace(line[idx+3:])
			if text != "" && ratio != "" {
				entries = append(entries, Entry{Text: text, Ratio: ratio})
				continue
			}
		}

		entries = append(entries, Entry{Text: line})
	}

	return entries, nil
}
