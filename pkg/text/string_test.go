package text_test

import (
	"testing"

	"github.com/julien-sobczak/nt-bulk/pkg/text"
	"github.com/stretchr/testify/assert"
)

func TestIsBlank(t *testing.T) {
	assert.True(t, text.IsBlank(""))
	assert.True(t, text.IsBlank(" \t "))
	assert.False(t, text.IsBlank(" a "))
}

func TestSplitLines(t *testing.T) {
	var tests = []struct {
		name     string
		input    string
		expected []string
	}{
		{"Empty", "", nil},
		{"OnlyNewlines", "\n\n", nil},
		{"Single", "a;b", []string{"a;b"}},
		{"TrailingNewline", "a;b\nc;d\n", []string{"a;b", "c;d"}},
		{"BlankLineInside", "a,b\n\nc,d,e", []string{"a,b", "", "c,d,e"}},
		{"LeadingTab", "\tback\n", []string{"\tback"}},
		{"Windows", "a\r\nb", []string{"a", "b"}},
		{"WhitespaceOnly", "  \n\t\n", nil},
		{"LeadingWhitespaceLine", "   \na;b\n \t \n", []string{"a;b"}},
		{"WhitespaceLineInside", "a;b\n  \nc;d", []string{"a;b", "  ", "c;d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, text.SplitLines(tt.input))
		})
	}
}

func TestTrimNumberSuffix(t *testing.T) {
	assert.Equal(t, "chapter", text.TrimNumberSuffix("chapter12"))
	assert.Equal(t, "go", text.TrimNumberSuffix("go"))
	assert.Equal(t, "", text.TrimNumberSuffix("42"))
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, text.Unique([]string{"b", "a", "b", "c", "a"}))
	assert.Nil(t, text.Unique(nil))
}

func TestTrimExtension(t *testing.T) {
	assert.Equal(t, "My Photo", text.TrimExtension("My Photo.PNG"))
	assert.Equal(t, "medias/go", text.TrimExtension("medias/go.svg"))
	assert.Equal(t, "go", text.TrimExtension("go"))
}
