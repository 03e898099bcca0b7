package main

import (
	"fmt"
	"strings"

	"github.com/julien-sobczak/nt-bulk/internal/core"
	"github.com/spf13/cobra"
)

var formatClozeNumber int
var formatClozeIncremental bool
var formatColor string

func init() {
	formatClozeCmd.Flags().IntVarP(&formatClozeNumber, "number", "c", 1, "cloze deletion number")
	formatClozeCmd.Flags().BoolVarP(&formatClozeIncremental, "incremental", "i", false, "use a new number for every occurrence")
	formatStyleCmd.Flags().StringVar(&formatColor, "color", "", "color used by the color and background styles")
	formatCmd.AddCommand(formatClozeCmd)
	formatCmd.AddCommand(formatUnclozeCmd)
	formatCmd.AddCommand(formatJoinCmd)
	formatCmd.AddCommand(formatConcatCmd)
	formatCmd.AddCommand(formatStyleCmd)
	rootCmd.AddCommand(formatCmd)
}

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Edit the content before creating notes",
}

var formatClozeCmd = &cobra.Command{
	Use:   "cloze WORD [file]",
	Short: "Turn every occurrence of a word into a cloze deletion",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		content, err := readInput(args[1:])
		exitOnError(err)
		writeOutput(args[1:], core.ClozeWord(content, args[0], formatClozeNumber, formatClozeIncremental))
	},
}

var formatUnclozeCmd = &cobra.Command{
	Use:   "uncloze [file]",
	Short: "Revert all cloze deletions",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		content, err := readInput(args)
		exitOnError(err)
		writeOutput(args, core.RemoveClozes(content))
	},
}

var formatJoinCmd = &cobra.Command{
	Use:   "join [file]",
	Short: "Merge all lines into a single one",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		content, err := readInput(args)
		exitOnError(err)
		writeOutput(args, core.JoinLines(strings.TrimRight(content, "\n"))+"\n")
	},
}

var formatConcatCmd = &cobra.Command{
	Use:   "concat FILE OTHER",
	Short: "Append every line of OTHER to the line at the same position in FILE",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		content, err := readInput(args[:1])
		exitOnError(err)
		other, err := readInput(args[1:])
		exitOnError(err)
		writeOutput(args[:1], core.ConcatenateLines(content, other)+"\n")
	},
}

var formatStyleCmd = &cobra.Command{
	Use:   "style bold|italic|underline|highlight|color|background TEXT",
	Short: "Print the text wrapped in HTML formatting",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		result, err := applyStyle(args[0], args[1], formatColor)
		exitOnError(err)
		fmt.Println(result)
	},
}

func applyStyle(style, text, color string) (string, error) {
	switch style {
	case "bold":
		return core.Bold(text), nil
	case "italic":
		return core.Italic(text), nil
	case "underline":
		return core.Underline(text), nil
	case "highlight":
		return core.Highlight(text), nil
	case "color", "background":
		if color == "" {
			return "", fmt.Errorf("missing --color for style %q", style)
		}
		if style == "color" {
			return core.TextColor(text, color), nil
		}
		return core.BackgroundColor(text, color), nil
	}
	return "", fmt.Errorf("unknown style %q", style)
}
