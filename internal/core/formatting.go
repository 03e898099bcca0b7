package core

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/julien-sobczak/nt-bulk/pkg/text"
)

var clozeRegex = regexp.MustCompile(`{{c\d+::(.*?)}}`)

// Wrap surrounds a text with an opening and a closing tag.
func Wrap(s, open, close string) string {
	return open + s + close
}

func Bold(s string) string      { return Wrap(s, "<b>", "</b>") }
func Italic(s string) string    { return Wrap(s, "<i>", "</i>") }
func Underline(s string) string { return Wrap(s, "<u>", "</u>") }
func Highlight(s string) string { return Wrap(s, "<mark>", "</mark>") }

// TextColor changes the font color of a text.
func TextColor(s, color string) string {
	return Wrap(s, fmt.Sprintf(`<span style="color:%s">`, color), "</span>")
}

// BackgroundColor changes the background color of a text.
func BackgroundColor(s, color string) string {
	return Wrap(s, fmt.Sprintf(`<span style="background-color:%s">`, color), "</span>")
}

// Cloze hides a text behind the cloze deletion number n.
// Ex: Cloze("Paris", 1) => "{{c1::Paris}}"
func Cloze(s string, n int) string {
	return fmt.Sprintf("{{c%d::%s}}", n, strings.TrimSpace(s))
}

// ClozeWord turns every occurrence of a word into a cloze deletion.
// When incremental is set, each occurrence gets its own number starting at n.
func ClozeWord(content, word string, n int, incremental bool) string {
	if word == "" {
		return content
	}
	var sb strings.Builder
	for {
		i := strings.Index(content, word)
		if i < 0 {
			break
		}
		sb.WriteString(content[:i])
		sb.WriteString(Cloze(word, n))
		if incremental {
			n++
		}
		content = content[i+len(word):]
	}
	sb.WriteString(content)
	return sb.String()
}

// RemoveClozes reverts all cloze deletions.
func RemoveClozes(s string) string {
	return clozeRegex.ReplaceAllString(s, "$1")
}

// JoinLines merges all lines into a single one.
func JoinLines(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ConcatenateLines appends every line of other to the line at the same index in current.
func ConcatenateLines(current, other string) string {
	currentLines := text.SplitLines(current)
	otherLines := text.SplitLines(other)
	count := max(len(currentLines), len(otherLines))
	result := make([]string, count)
	for i := 0; i < count; i++ {
		var line string
		if i < len(currentLines) {
			line += currentLines[i]
		}
		if i < len(otherLines) {
			line += otherLines[i]
		}
		result[i] = strings.TrimSpace(line)
	}
	return text.JoinLines(result)
}
