package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/BartekS5/tabconv/internal/config"
	"github.com/BartekS5/tabconv/internal/etl"
	"github.com/BartekS5/tabconv/pkg/database"
	"github.com/BartekS5/tabconv/pkg/logger"
	"github.com/BartekS5/tabconv/pkg/models"
)

func setup() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	err = logger.InitLogger(logger.Options{Level: cfg.LogLevel, JSON: cfg.LogJSON, File: cfg.LogFile})
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return cfg, nil
}

func (o *ConvertOptions) job() (*models.Job, error) {
	if o.JobFile != "" {
		return config.LoadJob(o.JobFile)
	}

	add, err := etl.ParseNewColumns(o.Add)
	if err != nil {
		return nil, err
	}
	return &models.Job{
		Source: o.descriptor(),
		Sink:   models.SinkDescriptor{Format: o.OutputFormat, TableName: o.TableName},
		Edit:   models.ColumnEdit{Keep: trimAll(o.Keep), Add: add},
	}, nil
}

func runConvert(ctx context.Context, out io.Writer, opts *ConvertOptions) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	job, err := opts.job()
	if err != nil {
		return err
	}

	extractor, err := etl.NewExtractor(cfg, job.Source)
	if err != nil {
		return err
	}
	loader, err := etl.NewLoader(cfg, job.Sink)
	if err != nil {
		return err
	}

	pipeline := etl.NewPipeline(extractor, loader, job.Edit, opts.DryRun)
	pipeline.Out = out

	// A degraded run still loads the table; report the load before its error.
	report, err := pipeline.Run(ctx)
	if report != nil && report.Loaded {
		color.New(color.FgGreen).Fprintf(out, "Data successfully converted to %s\n", job.Sink.Format)
	}
	return err
}

func runSummarize(ctx context.Context, out io.Writer, opts *SourceOptions) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	table, err := etl.Extract(ctx, cfg, opts.descriptor())
	if err != nil {
		return err
	}
	etl.Summarize(out, table, "Data Summary")
	fmt.Fprintf(out, "Columns: %s\n", strings.Join(table.ColumnNames(), ", "))
	return nil
}

func runTables(ctx context.Context, out io.Writer) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	dialect, err := database.DialectFor(cfg.SQLDriver)
	if err != nil {
		return err
	}
	db, err := database.ConnectSQL(ctx, cfg.SQLDriver, cfg.SQLDataSource())
	if err != nil {
		return err
	}
	defer db.Close()

	names, err := database.ListTables(ctx, db, dialect)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Tables in the database:")
	for _, name := range names {
		fmt.Fprintf(out, "  %s\n", name)
	}
	return nil
}

func trimAll(items []string) []string {
	var out []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
