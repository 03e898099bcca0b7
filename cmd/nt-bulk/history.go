package main

import (
	"encoding/json"
	"fmt"

	"github.com/itchyny/gojq"
	"github.com/julien-sobczak/nt-bulk/internal/core"
	"github.com/spf13/cobra"
)

var historyLimit int
var historyNotes bool
var historyJSON bool
var historyJQ string

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "maximum number of batches")
	historyCmd.Flags().BoolVar(&historyNotes, "notes", false, "include the notes of every batch")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output in JSON")
	historyCmd.Flags().StringVar(&historyJQ, "jq", "", "jq expression applied on the JSON output")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List the last batches",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		journal, err := core.OpenJournal(core.CurrentConfig().JournalPath())
		exitOnError(err)
		defer journal.Close()

		batches, err := journal.Batches(historyLimit)
		exitOnError(err)
		if historyNotes || historyJQ != "" {
			for _, batch := range batches {
				exitOnError(journal.LoadNotes(batch))
			}
		}

		if !historyJSON && historyJQ == "" {
			fmt.Print(formatBatches(batches))
			return
		}

		values, err := queryBatches(batches, historyJQ)
		exitOnError(err)
		for _, value := range values {
			data, err := json.MarshalIndent(value, "", "  ")
			exitOnError(err)
			fmt.Println(string(data))
		}
	},
}

// queryBatches converts the batches to JSON values and applies the jq expression if any.
func queryBatches(batches []*core.Batch, expr string) ([]any, error) {
	data, err := json.Marshal(batches)
	if err != nil {
		return nil, err
	}
	var input any
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, err
	}
	if expr == "" {
		return []any{input}, nil
	}

	query, err := gojq.Parse(expr)
	if err != nil {
		return nil, err
	}
	iter := query.Run(input)
	var values []any
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
