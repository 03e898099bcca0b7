package core

import (
	"strconv"
	"strings"

	"github.com/julien-sobczak/nt-bulk/pkg/text"
)

// ParseTagLine parses a comma-separated list of tags.
// Ex: "go, testing,," => ["go", "testing"]
func ParseTagLine(line string) []string {
	var tags []string
	for _, tag := range strings.Split(line, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// FormatTagLine is the reverse of ParseTagLine.
func FormatTagLine(tags []string) string {
	return strings.Join(tags, ", ")
}

// TagsForLine returns the tags of the line at the given raw index.
// Missing tag lines mean no tags.
func TagsForLine(tagLines []string, index int) []string {
	if index < 0 || index >= len(tagLines) {
		return nil
	}
	return ParseTagLine(tagLines[index])
}

// AlignTagLines pads with blank lines or truncates to keep one tag line per content line.
func AlignTagLines(tagLines []string, count int) []string {
	result := make([]string, count)
	copy(result, tagLines)
	return result
}

// NumberTagLines appends the 1-based line number to every tag of every line.
// Existing numbers are replaced. When no line has tags, lines are simply numbered.
func NumberTagLines(tagLines []string, count int) []string {
	if allBlank(tagLines) {
		result := make([]string, count)
		for i := range result {
			result[i] = strconv.Itoa(i + 1)
		}
		return result
	}
	return rewriteTagLines(tagLines, count, func(i int, tags []string) []string {
		return NumberTags(tags, i)
	})
}

// UnnumberTagLines removes the numbers added by NumberTagLines.
func UnnumberTagLines(tagLines []string, count int) []string {
	return rewriteTagLines(tagLines, count, func(i int, tags []string) []string {
		return tags
	})
}

// RepeatTagLines copies the tags of the first non-blank line on every line.
// Duplicate tags are removed.
func RepeatTagLines(tagLines []string, count int) []string {
	result := make([]string, count)
	for _, line := range tagLines {
		tags := text.Unique(ParseTagLine(line))
		if len(tags) == 0 {
			continue
		}
		for i := range result {
			result[i] = FormatTagLine(tags)
		}
		break
	}
	return result
}

func rewriteTagLines(tagLines []string, count int, fn func(i int, tags []string) []string) []string {
	result := make([]string, count)
	for i := 0; i < count && i < len(tagLines); i++ {
		if text.IsBlank(tagLines[i]) {
			continue
		}
		var tags []string
		for _, tag := range ParseTagLine(tagLines[i]) {
			if stripped := text.TrimNumberSuffix(tag); stripped != "" {
				tags = append(tags, stripped)
			}
		}
		result[i] = FormatTagLine(fn(i, tags))
	}
	return result
}

func allBlank(lines []string) bool {
	for _, line := range lines {
		if !text.IsBlank(line) {
			return false
		}
	}
	return true
}
