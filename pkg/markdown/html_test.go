package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInlineToHTML(t *testing.T) {
	var tests = []struct {
		name     string
		input    string
		expected string
	}{
		{"Bold", "A **gopher**", "A <strong>gopher</strong>"},
		{"Italic", "*Go*", "<em>Go</em>"},
		{"Plain", "hello", "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InlineToHTML(tt.input))
		})
	}
}
