package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/julien-sobczak/nt-bulk/internal/core"
	"github.com/julien-sobczak/nt-bulk/pkg/text"
)

var (
	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			Padding(0, 1)
	cardFieldNameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170"))
	cardTagsStyle      = lipgloss.NewStyle().Faint(true)
)

// renderCard draws the preview of a note in the terminal.
func renderCard(card *core.PreviewCard) string {
	var sb strings.Builder
	for i, field := range card.Fields {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(cardFieldNameStyle.Render(field.Name))
		sb.WriteString("\n")
		sb.WriteString(field.Value)
	}
	if len(card.Tags) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(cardTagsStyle.Render("Tags: " + core.FormatTagLine(card.Tags)))
	}
	return cardStyle.Render(sb.String())
}

// formatDrafts prints the notes as a YAML stream.
func formatDrafts(drafts []*core.NoteDraft) string {
	var sb strings.Builder
	for _, draft := range drafts {
		sb.WriteString("---\n")
		sb.WriteString(draft.ToYAML())
	}
	return sb.String()
}

func formatFailures(failures []*core.NoteCreationError) string {
	var sb strings.Builder
	for _, failure := range failures {
		sb.WriteString(color.RedString("Line %d: %v", failure.Line+1, failure.Err))
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatBatches(batches []*core.Batch) string {
	if len(batches) == 0 {
		return "No batch recorded\n"
	}
	var sb strings.Builder
	for _, batch := range batches {
		fmt.Fprintf(&sb, "%s %s %s (%s): %d created",
			color.YellowString(batch.OID.Short()),
			batch.StartedAt.Local().Format("2006-01-02 15:04"),
			batch.Deck,
			batch.NoteType,
			batch.Created)
		if batch.Failed > 0 {
			fmt.Fprintf(&sb, ", %s", color.RedString("%d failed", batch.Failed))
		}
		if batch.Skipped > 0 {
			fmt.Fprintf(&sb, ", %d skipped", batch.Skipped)
		}
		sb.WriteString("\n")
		for _, note := range batch.Notes {
			if note.Error != "" {
				fmt.Fprintf(&sb, "  #%d %s\n", note.Position, color.RedString(note.Error))
				continue
			}
			fmt.Fprintf(&sb, "  #%d note %d\n", note.Position, note.NoteID)
		}
	}
	return sb.String()
}

func formatSettings(settings *core.Settings) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "deck: %s\n", settings.Deck)
	fmt.Fprintf(&sb, "note type: %s\n", settings.NoteType)
	fmt.Fprintf(&sb, "delimiters: %s\n", settings.DelimiterSet())
	fmt.Fprintf(&sb, "content: %d line(s)\n", len(text.SplitLines(settings.Content)))
	fmt.Fprintf(&sb, "tags: %d line(s)\n", len(text.SplitLines(settings.Tags)))
	return sb.String()
}
