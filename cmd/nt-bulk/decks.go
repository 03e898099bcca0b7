package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	decksCmd.AddCommand(decksCreateCmd)
	rootCmd.AddCommand(decksCmd)
	rootCmd.AddCommand(noteTypesCmd)
	rootCmd.AddCommand(fieldsCmd)
}

var decksCmd = &cobra.Command{
	Use:   "decks",
	Short: "List decks",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()
		names, err := ankiClient().DeckNames(ctx)
		exitOnError(err)
		for _, name := range names {
			fmt.Println(name)
		}
	},
}

var decksCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a deck",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()
		id, err := ankiClient().CreateDeck(ctx, args[0])
		exitOnError(err)
		fmt.Printf("Deck %q created (%d)\n", args[0], id)
	},
}

var noteTypesCmd = &cobra.Command{
	Use:   "note-types",
	Short: "List note types",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()
		names, err := ankiClient().NoteTypeNames(ctx)
		exitOnError(err)
		for _, name := range names {
			fmt.Println(name)
		}
	},
}

var fieldsCmd = &cobra.Command{
	Use:   "fields NOTE_TYPE",
	Short: "List the fields of a note type in order",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()
		names, err := ankiClient().FieldNames(ctx, args[0])
		exitOnError(err)
		for i, name := range names {
			fmt.Printf("%d. %s\n", i+1, name)
		}
	},
}
