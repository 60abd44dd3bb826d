// Package cli handles the command-line interface logic
// using the Cobra library.
package cli

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tabconv",
		Short: "tabconv - convert tabular data between CSV, JSON, SQL and MongoDB",
		Long: heredoc.Doc(`
			tabconv extracts a table from a file, a URL, a SQL store or a MongoDB
			collection, optionally keeps a subset of its columns and adds constant
			columns, then writes it to output.csv, output.json, a SQL table or a
			MongoDB collection.

			Settings are read from the environment and from a .env file.
		`),
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.AddCommand(NewConvertCmd(), NewSummarizeCmd(), NewTablesCmd())

	return rootCmd
}
