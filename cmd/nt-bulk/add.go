package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/julien-sobczak/nt-bulk/internal/core"
	"github.com/julien-sobczak/nt-bulk/pkg/text"
	"github.com/spf13/cobra"
)

var addTags string
var addDeck string
var addNoteType string
var addDelimiters string
var addFields string
var addNumbered bool
var addRepeatTags bool
var addMarkdown bool
var addDryRun bool
var addFromSettings bool

func init() {
	addCmd.Flags().StringVarP(&addTags, "tags", "t", "", "file containing comma-separated tags, one line per note")
	addCmd.Flags().StringVarP(&addDeck, "deck", "d", "", "destination deck")
	addCmd.Flags().StringVarP(&addNoteType, "note-type", "n", "", "note type of the created notes")
	addCmd.Flags().StringVarP(&addDelimiters, "delimiters", "s", "", "comma-separated list of enabled delimiters (ex: Tab,Semicolon)")
	addCmd.Flags().StringVar(&addFields, "fields", "", "comma-separated field names of the note type (skip the lookup in Anki)")
	addCmd.Flags().BoolVar(&addNumbered, "numbered", false, "append the card number to every tag")
	addCmd.Flags().BoolVar(&addRepeatTags, "repeat-tags", false, "reuse the first tag line for every note")
	addCmd.Flags().BoolVar(&addMarkdown, "markdown", false, "convert field values from Markdown to HTML")
	addCmd.Flags().BoolVar(&addDryRun, "dry-run", false, "print the notes instead of creating them")
	addCmd.Flags().BoolVar(&addFromSettings, "from-settings", false, "reuse the content and tags of the last session")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add [file]",
	Short: "Create one note per line",
	Long:  `Create one note per non-blank line of the file (or stdin).`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := core.CurrentConfig()

		settings, err := core.LoadSettings(config.SettingsPath())
		exitOnError(err)

		var content, tagContent string
		if addFromSettings {
			content = settings.Content
			tagContent = settings.Tags
		} else {
			content, err = readInput(args)
			exitOnError(err)
			if addTags != "" {
				data, err := os.ReadFile(addTags)
				exitOnError(err)
				tagContent = string(data)
			}
		}
		lines := text.SplitLines(content)
		tagLines := text.SplitLines(tagContent)
		if addRepeatTags {
			tagLines = core.RepeatTagLines(tagLines, len(lines))
		}

		delimiters, err := selectDelimiters(addDelimiters, config, settings)
		exitOnError(err)

		ctx, cancel := commandContext()
		defer cancel()

		client := ankiClient()
		deck := firstNonBlank(addDeck, settings.Deck, config.ConfigFile.Defaults.Deck)
		noteType := firstNonBlank(addNoteType, settings.NoteType, config.ConfigFile.Defaults.NoteType)
		if deck == "" && interactive() {
			deck = chooseFrom(ctx, "Which deck?", client.DeckNames)
		}
		if noteType == "" && interactive() {
			noteType = chooseFrom(ctx, "Which note type?", client.NoteTypeNames)
		}

		var schemas core.SchemaProvider = client
		if addFields != "" {
			schemas = core.StaticSchemas{noteType: core.ParseTagLine(addFields)}
		}

		req := core.BuildRequest{
			Lines:      lines,
			TagLines:   tagLines,
			NoteType:   noteType,
			Deck:       deck,
			Delimiters: delimiters.Enabled(),
			Numbered:   addNumbered || config.ConfigFile.Defaults.Numbered,
			Markdown:   addMarkdown || config.ConfigFile.Defaults.Markdown,
		}

		var result *core.BuildResult
		if addDryRun {
			result, err = core.NewBuilder(schemas, core.NewMemoryStore()).Build(ctx, req)
			if result != nil {
				fmt.Print(formatDrafts(result.Drafts))
			}
			exitOnBuildError(result, err)
		} else {
			result, err = buildAndRecord(ctx, config, schemas, client, req)
			exitOnBuildError(result, err)
		}

		fmt.Print(formatFailures(result.Failures))
		if len(result.Failures) > 0 {
			color.Yellow(result.String())
		} else {
			color.Green(result.String())
		}

		settings.Content = content
		settings.Tags = tagContent
		settings.Deck = deck
		settings.NoteType = noteType
		settings.SetDelimiterSet(delimiters)
		if err := settings.Save(config.SettingsPath()); err != nil {
			core.CurrentLogger().Warnf("Unable to save settings: %v", err)
		}
	},
}

// buildAndRecord creates the notes in Anki and records the batch in the journal.
func buildAndRecord(ctx context.Context, config *core.Config, schemas core.SchemaProvider, store core.NoteStore, req core.BuildRequest) (*core.BuildResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	// Anki unreachable or unknown note type must not leave an empty batch in the journal
	schema, err := schemas.FieldNames(ctx, req.NoteType)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve fields of note type %q: %w", req.NoteType, err)
	}

	journal, err := core.OpenJournal(config.JournalPath())
	if err != nil {
		return nil, err
	}
	defer journal.Close()

	recorder, err := journal.Record(store, req.Deck, req.NoteType)
	if err != nil {
		return nil, err
	}
	core.CurrentLogger().Infof("Recording batch %s", recorder.BatchOID().Short())

	result, buildErr := core.NewBuilder(core.StaticSchemas{req.NoteType: schema}, recorder).Build(ctx, req)
	if result != nil {
		if err := recorder.Finish(result); err != nil {
			core.CurrentLogger().Warnf("Unable to complete batch %s: %v", recorder.BatchOID().Short(), err)
		}
	}
	return result, buildErr
}

// selectDelimiters uses the flag first, then the last session, then the configuration.
func selectDelimiters(flag string, config *core.Config, settings *core.Settings) (*core.DelimiterSet, error) {
	if flag != "" {
		return core.ParseDelimiterSet(flag)
	}
	if set := settings.DelimiterSet(); len(set.Enabled()) > 0 {
		return set, nil
	}
	return config.ConfigFile.Defaults.DelimiterSet()
}

func exitOnBuildError(result *core.BuildResult, err error) {
	if err == nil {
		return
	}
	fmt.Fprint(os.Stderr, formatBuildError(result, err))
	os.Exit(1)
}

// formatBuildError explains why a batch stopped. The outcome of an interrupted
// batch is included as the notes already created are kept.
func formatBuildError(result *core.BuildResult, err error) string {
	switch {
	case errors.Is(err, core.ErrMissingSelection):
		return fmt.Sprintf("%v (use --deck, --note-type and --delimiters)\n", err)
	case errors.Is(err, context.Canceled):
		var sb strings.Builder
		sb.WriteString("Interrupted. Notes already created are kept.\n")
		if result != nil {
			sb.WriteString(formatFailures(result.Failures))
			sb.WriteString(result.String())
			sb.WriteString("\n")
		}
		return sb.String()
	}
	return fmt.Sprintf("%v\n", err)
}

func firstNonBlank(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
