package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julien-sobczak/nt-bulk/internal/core"
	"github.com/julien-sobczak/nt-bulk/internal/helpers"
	"github.com/julien-sobczak/nt-bulk/pkg/markdown"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var previewLine int
var previewTags string
var previewNoteType string
var previewDelimiters string
var previewFields string
var previewNumbered bool
var previewMarkdown bool
var previewOpen bool

func init() {
	previewCmd.Flags().IntVarP(&previewLine, "line", "l", 1, "line number to preview (1-based)")
	previewCmd.Flags().StringVarP(&previewTags, "tags", "t", "", "file containing comma-separated tags, one line per note")
	previewCmd.Flags().StringVarP(&previewNoteType, "note-type", "n", "", "note type of the note")
	previewCmd.Flags().StringVarP(&previewDelimiters, "delimiters", "s", "", "comma-separated list of enabled delimiters (ex: Tab,Semicolon)")
	previewCmd.Flags().StringVar(&previewFields, "fields", "", "comma-separated field names of the note type (skip the lookup in Anki)")
	previewCmd.Flags().BoolVar(&previewNumbered, "numbered", false, "append the card number to every tag")
	previewCmd.Flags().BoolVar(&previewMarkdown, "markdown", false, "convert field values from Markdown to HTML")
	previewCmd.Flags().BoolVar(&previewOpen, "open", false, "open the preview in the browser")
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Show the note created for a line",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := core.CurrentConfig()
		settings, err := core.LoadSettings(config.SettingsPath())
		exitOnError(err)

		lines, err := readLines(args)
		exitOnError(err)
		tagLines, err := readTagLines(previewTags)
		exitOnError(err)

		delimiters, err := selectDelimiters(previewDelimiters, config, settings)
		exitOnError(err)

		var schema []string
		if previewFields != "" {
			schema = core.ParseTagLine(previewFields)
		} else {
			noteType := firstNonBlank(previewNoteType, settings.NoteType, config.ConfigFile.Defaults.NoteType)
			if noteType == "" {
				exitOnError(fmt.Errorf("%w: no note type", core.ErrMissingSelection))
			}
			ctx, cancel := commandContext()
			defer cancel()
			schema, err = ankiClient().FieldNames(ctx, noteType)
			exitOnError(err)
		}

		card := core.Preview(lines, previewLine-1, schema, tagLines, delimiters.Enabled(), previewNumbered || config.ConfigFile.Defaults.Numbered)
		if card == nil {
			fmt.Fprintf(os.Stderr, "Line %d does not produce any note\n", previewLine)
			os.Exit(1)
		}

		if previewMarkdown || config.ConfigFile.Defaults.Markdown {
			for i, field := range card.Fields {
				card.Fields[i].Value = markdown.InlineToHTML(field.Value)
			}
		}

		if !previewOpen {
			fmt.Println(renderCard(card))
			return
		}

		html := card.HTML()
		path := filepath.Join(os.TempDir(), fmt.Sprintf("nt-bulk-preview-%s.html", helpers.Hash([]byte(html))[:7]))
		exitOnError(os.WriteFile(path, []byte(html), 0644))
		if err := browser.OpenFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "Unable to open %s: %v\n", path, err)
			os.Exit(1)
		}
	},
}
