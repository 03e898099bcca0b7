package main

import (
	"fmt"
	"os"

	"github.com/julien-sobczak/nt-bulk/internal/core"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the configuration",
	Long:  `Create the configuration file in $NT_BULK_HOME (default to ~/.nt-bulk).`,
	Run: func(cmd *cobra.Command, args []string) {
		config, err := core.InitConfigFromDirectory(core.CurrentHome())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("Initialized configuration in %s\n", config.RootDirectory)
	},
}
