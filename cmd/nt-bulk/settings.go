package main

import (
	"fmt"

	"github.com/julien-sobczak/nt-bulk/internal/core"
	"github.com/spf13/cobra"
)

var settingsContent string
var settingsTags string
var settingsDeck string
var settingsNoteType string
var settingsDelimiters string

func init() {
	settingsSaveCmd.Flags().StringVar(&settingsContent, "content", "", "file containing the content to restore")
	settingsSaveCmd.Flags().StringVar(&settingsTags, "tags", "", "file containing the tag lines to restore")
	settingsSaveCmd.Flags().StringVar(&settingsDeck, "deck", "", "default deck")
	settingsSaveCmd.Flags().StringVar(&settingsNoteType, "note-type", "", "default note type")
	settingsSaveCmd.Flags().StringVar(&settingsDelimiters, "delimiters", "", "comma-separated list of enabled delimiters")
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSaveCmd)
	rootCmd.AddCommand(settingsCmd)
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage the state restored between sessions",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved settings",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := core.LoadSettings(core.CurrentConfig().SettingsPath())
		exitOnError(err)
		fmt.Print(formatSettings(settings))
	},
}

var settingsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Update the saved settings",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path := core.CurrentConfig().SettingsPath()
		settings, err := core.LoadSettings(path)
		exitOnError(err)

		if settingsContent != "" {
			settings.Content, err = readInput([]string{settingsContent})
			exitOnError(err)
		}
		if settingsTags != "" {
			settings.Tags, err = readInput([]string{settingsTags})
			exitOnError(err)
		}
		if settingsDeck != "" {
			settings.Deck = settingsDeck
		}
		if settingsNoteType != "" {
			settings.NoteType = settingsNoteType
		}
		if settingsDelimiters != "" {
			set, err := core.ParseDelimiterSet(settingsDelimiters)
			exitOnError(err)
			settings.SetDelimiterSet(set)
		}
		exitOnError(settings.Save(path))
		fmt.Printf("Settings saved to %s\n", path)
	},
}
