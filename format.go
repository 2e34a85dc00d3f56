package recipecrawl

import (
	"fmt"
	"strings"
)

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// Separator returns a rule of n '=' characters.
func Separator(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("=", n)
}
