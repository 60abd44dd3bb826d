package cli

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/BartekS5/tabconv/pkg/models"
)

type SourceOptions struct {
	Location   string
	SourceType string
	Format     string
}

func (o *SourceOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Location, "source", "s", "", "Source file path, URL, SQL table or Mongo collection")
	cmd.Flags().StringVar(&o.SourceType, "source-type", models.KindFile, "Source type: file, url, sql or mongo")
	cmd.Flags().StringVarP(&o.Format, "format", "f", models.FormatCSV, "Input format for file and url sources: csv or json")
}

func (o *SourceOptions) descriptor() models.SourceDescriptor {
	return models.SourceDescriptor{Location: o.Location, Kind: o.SourceType, Format: o.Format}
}

type ConvertOptions struct {
	SourceOptions
	OutputFormat string
	TableName    string
	Keep         []string
	Add          []string
	JobFile      string
	DryRun       bool
}

func NewConvertCmd() *cobra.Command {
	opts := &ConvertOptions{}

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a table from one format to another",
		Example: heredoc.Doc(`
			# CSV file to a SQL table in output.db
			tabconv convert -s data.csv -o sql -t "Final Project Data"

			# JSON over HTTP to CSV, keeping two columns and adding one
			tabconv convert -s https://example.com/data.json --source-type url -f json -k name,city -a status:active

			# run a job file
			tabconv convert -j job.yaml
		`),
		RunE: func(c *cobra.Command, args []string) error {
			return runConvert(c.Context(), c.OutOrStdout(), opts)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVarP(&opts.OutputFormat, "output", "o", models.FormatCSV, "Output format: csv, json, sql or mongo")
	cmd.Flags().StringVarP(&opts.TableName, "table", "t", "", "Table or collection name for sql and mongo output")
	cmd.Flags().StringSliceVarP(&opts.Keep, "keep", "k", nil, "Columns to keep (comma separated); all columns when empty")
	cmd.Flags().StringSliceVarP(&opts.Add, "add", "a", nil, "New constant columns as name:value (comma separated)")
	cmd.Flags().StringVarP(&opts.JobFile, "job", "j", "", "Path to a YAML or JSON job file; other pipeline flags are ignored")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Extract and transform without writing the output")

	return cmd
}

func NewSummarizeCmd() *cobra.Command {
	opts := &SourceOptions{}

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Print the number of records and columns of a source",
		RunE: func(c *cobra.Command, args []string) error {
			return runSummarize(c.Context(), c.OutOrStdout(), opts)
		},
	}
	opts.addFlags(cmd)
	return cmd
}

func NewTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List the tables in the SQL store",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runTables(c.Context(), c.OutOrStdout())
		},
	}
}
