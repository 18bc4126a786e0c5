package internal

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"
)

// Version is the application version, overridden at build time via -ldflags.
var Version = "0.3.0"

// GenerateRequestID creates a unique ID for a generation request based on
// timestamp and caption text. Format: epochMillis_md5(text)[:8]
func GenerateRequestID(captionText string) string {
	epochMillis := time.Now().UnixNano() / 1000000

	hash := md5.Sum([]byte(captionText))
	hashStr := hex.EncodeToString(hash[:])[:8]

	return fmt.Sprintf("%d_%s", epochMillis, hashStr)
}

// SanitizeFilename creates a safe filename from a string
func SanitizeFilename(s string) string {
	result := ""
	for _, r := range s {
		if isAlphaNumeric(r) || r == '-' || r == '_' {
			result += string(r)
		} else {
			result += "_"
		}
	}
	return result
}

// isAlphaNumeric checks if a rune is alphanumeric (Latin or Hangul)
func isAlphaNumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') || (r >= 0xAC00 && r <= 0xD7A3)
}
