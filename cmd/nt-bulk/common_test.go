package main

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/julien-sobczak/nt-bulk/internal/core"
	"github.com/julien-sobczak/nt-bulk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestFormatBatches(t *testing.T) {
	startedAt := time.Date(2023, time.January, 1, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		batches  []*core.Batch
		expected string
	}{
		{
			name:     "no batches",
			batches:  nil,
			expected: "No batch recorded\n",
		},
		{
			name: "successful batch",
			batches: []*core.Batch{
				{OID: "0000000000000000000000000000000000000001", Deck: "Spanish", NoteType: "Basic", Created: 3, StartedAt: startedAt},
			},
			expected: "0000000 2023-01-01 12:00 Spanish (Basic): 3 created\n",
		},
		{
			name: "partial batch with notes",
			batches: []*core.Batch{
				{
					OID: "0000000000000000000000000000000000000002", Deck: "Spanish", NoteType: "Basic",
					Created: 1, Failed: 1, Skipped: 2, StartedAt: startedAt,
					Notes: []*core.BatchNote{
						{Position: 1, NoteID: 1496198395707},
						{Position: 2, Error: "duplicate"},
					},
				},
			},
			expected: `0000000 2023-01-01 12:00 Spanish (Basic): 1 created, 1 failed, 2 skipped
  #1 note 1496198395707
  #2 duplicate
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatBatches(tt.batches))
		})
	}
}

func TestFormatFailures(t *testing.T) {
	failures := []*core.NoteCreationError{
		{Line: 0, Err: errors.New("duplicate")},
		{Line: 4, Err: errors.New("empty first field")},
	}
	assert.Equal(t, "Line 1: duplicate\nLine 5: empty first field\n", formatFailures(failures))
	assert.Equal(t, "", formatFailures(nil))
}

func TestFormatDrafts(t *testing.T) {
	drafts := []*core.NoteDraft{
		core.Assemble(core.FieldSequence{"hola", "hello"}, []string{"Front", "Back"}, []string{"spanish"}, false, 0),
		core.Assemble(core.FieldSequence{"adiós"}, []string{"Front", "Back"}, nil, false, 1),
	}
	actual := formatDrafts(drafts)
	assert.Equal(t, 2, strings.Count(actual, "---\n"))
	assert.Contains(t, actual, "Front: hola")
	assert.Contains(t, actual, "- spanish")
	assert.Contains(t, actual, "Front: adiós")
}

func TestFormatSettings(t *testing.T) {
	settings := &core.Settings{
		Content:    "hola;hello\nadiós;goodbye\n",
		Tags:       "spanish\n",
		Delimiters: map[string]bool{"Semicolon": true, "Tab": true, "Comma": false},
		Deck:       "Spanish",
		NoteType:   "Basic",
	}
	expected := `deck: Spanish
note type: Basic
delimiters: Tab,Semicolon
content: 2 line(s)
tags: 1 line(s)
`
	assert.Equal(t, expected, formatSettings(settings))
}

func TestRenderCard(t *testing.T) {
	card := &core.PreviewCard{
		Fields: []core.PreviewField{
			{Name: "Front", Value: "hola"},
			{Name: "Back", Value: "hello"},
		},
		Tags: []string{"spanish1"},
	}
	actual := renderCard(card)
	assert.Contains(t, actual, "Front")
	assert.Contains(t, actual, "hola")
	assert.Contains(t, actual, "hello")
	assert.Contains(t, actual, "Tags: spanish1")
	assert.True(t, strings.Index(actual, "Front") < strings.Index(actual, "Back"))
}

func TestApplyStyle(t *testing.T) {
	tests := []struct {
		style    string
		color    string
		expected string
	}{
		{"bold", "", "<b>text</b>"},
		{"italic", "", "<i>text</i>"},
		{"underline", "", "<u>text</u>"},
		{"highlight", "", "<mark>text</mark>"},
	}
	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			actual, err := applyStyle(tt.style, "text", tt.color)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}

	_, err := applyStyle("color", "text", "")
	assert.Error(t, err)
	_, err = applyStyle("blink", "text", "red")
	assert.Error(t, err)
}

func TestQueryBatches(t *testing.T) {
	batches := []*core.Batch{
		{OID: "1", Deck: "Spanish", Created: 3},
		{OID: "2", Deck: "German", Created: 1, Failed: 2},
	}

	values, err := queryBatches(batches, `.[] | select(.failed > 0) | .deck`)
	require.NoError(t, err)
	assert.Equal(t, []any{"German"}, values)

	values, err = queryBatches(batches, "")
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Len(t, values[0], 2)

	_, err = queryBatches(batches, ".[")
	assert.Error(t, err)
}

func TestFirstNonBlank(t *testing.T) {
	assert.Equal(t, "Spanish", firstNonBlank("", "  ", "Spanish", "Default"))
	assert.Equal(t, "", firstNonBlank("", " "))
}

func TestReadLines(t *testing.T) {
	path := testutil.SetUpFromFileContent(t, "batch.txt", "\thola\thello\r\n\nadiós;goodbye\n")

	lines, err := readLines([]string{path})
	require.NoError(t, err)
	// Leading tabs are significant
	assert.Equal(t, []string{"\thola\thello", "", "adiós;goodbye"}, lines)

	tagLines, err := readTagLines("")
	require.NoError(t, err)
	assert.Nil(t, tagLines)
}
