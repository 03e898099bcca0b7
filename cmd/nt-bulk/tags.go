package main

import (
	"github.com/julien-sobczak/nt-bulk/internal/core"
	"github.com/julien-sobczak/nt-bulk/pkg/text"
	"github.com/spf13/cobra"
)

var tagsPrint bool

func init() {
	tagsCmd.PersistentFlags().BoolVarP(&tagsPrint, "print", "p", false, "print the tag lines instead of rewriting the file")
	tagsCmd.AddCommand(newTagsCommand("align", "Keep one tag line per content line", core.AlignTagLines))
	tagsCmd.AddCommand(newTagsCommand("number", "Append the line number to every tag", core.NumberTagLines))
	tagsCmd.AddCommand(newTagsCommand("unnumber", "Remove the number appended to tags", core.UnnumberTagLines))
	tagsCmd.AddCommand(newTagsCommand("repeat", "Repeat the first tag line on every line", core.RepeatTagLines))
	rootCmd.AddCommand(tagsCmd)
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Rewrite the tag lines of a batch",
}

func newTagsCommand(name, short string, fn func(tagLines []string, count int) []string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " CONTENT_FILE TAGS_FILE",
		Short: short,
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			lines, err := readLines(args[:1])
			exitOnError(err)
			tagLines, err := readTagLines(args[1])
			exitOnError(err)

			result := text.JoinLines(fn(tagLines, len(lines))) + "\n"
			if tagsPrint {
				writeOutput(nil, result)
				return
			}
			writeOutput(args[1:], result)
		},
	}
}
