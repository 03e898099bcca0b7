package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupDelimiter(t *testing.T) {
	var tests = []struct {
		input    string
		expected Delimiter
	}{
		{"Tab", Tab},
		{"tab", Tab},
		{`\t`, Tab},
		{"\t", Tab},
		{"comma", Comma},
		{";", Semicolon},
		{"QuestionMark", QuestionMark},
		{"|", Pipe},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			actual, ok := LookupDelimiter(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.expected, actual)
		})
	}

	_, ok := LookupDelimiter("Dash")
	assert.False(t, ok)
}

func TestDelimiterSet(t *testing.T) {
	// Order of arguments is ignored, checklist order wins
	set, err := NewDelimiterSet("Pipe", "Semicolon", "Tab")
	require.NoError(t, err)
	assert.Equal(t, []Delimiter{Tab, Semicolon, Pipe}, set.Enabled())
	assert.Equal(t, "Tab,Semicolon,Pipe", set.String())
	assert.True(t, set.IsEnabled(Pipe))
	assert.False(t, set.IsEnabled(Comma))

	require.NoError(t, set.Disable("Tab"))
	require.NoError(t, set.Enable(","))
	assert.Equal(t, []Delimiter{Comma, Semicolon, Pipe}, set.Enabled())

	states := set.States()
	assert.Len(t, states, len(Delimiters))
	assert.True(t, states["Comma"])
	assert.False(t, states["Tab"])

	_, err = NewDelimiterSet("Dash")
	assert.ErrorContains(t, err, `unknown delimiter "Dash"`)
}

func TestParseDelimiterSet(t *testing.T) {
	set, err := ParseDelimiterSet("Semicolon, Tab,")
	require.NoError(t, err)
	assert.Equal(t, []Delimiter{Tab, Semicolon}, set.Enabled())

	set, err = ParseDelimiterSet("")
	require.NoError(t, err)
	assert.Empty(t, set.Enabled())
}
