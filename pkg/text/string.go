package text

import (
	"path/filepath"
	"strings"
)

// IsBlank returns if a text is blank.
func IsBlank(text string) bool {
	return len(strings.TrimSpace(text)) == 0
}

// SplitLines splits a text area content into lines.
// Leading and trailing blank lines are ignored but other blank characters are
// preserved as a line may start with a tab delimiter.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	for len(lines) > 0 && IsBlank(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && IsBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil
	}
	return lines
}

// JoinLines is the reverse of SplitLines.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// TrimNumberSuffix removes trailing digits.
// Ex: "chapter12" => "chapter"
func TrimNumberSuffix(text string) string {
	return strings.TrimRight(text, "0123456789")
}

// Unique removes duplicates, preserving the order of first occurrence.
func Unique(values []string) []string {
	seen := make(map[string]bool)
	var result []string
	for _, value := range values {
		if seen[value] {
			continue
		}
		seen[value] = true
		result = append(result, value)
	}
	return result
}

// TrimExtension removes the extension from a file name or file path.
func TrimExtension(path string) string {
	path = strings.TrimSuffix(path, string(filepath.Separator))
	return strings.TrimSuffix(path, filepath.Ext(path))
}
