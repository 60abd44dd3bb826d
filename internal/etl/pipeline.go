package etl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/BartekS5/tabconv/pkg/logger"
	"github.com/BartekS5/tabconv/pkg/models"
)

type State int

const (
	StateIdle State = iota
	StateExtracting
	StateExtracted
	StateFailed
	StateSummarizing
	StateTransforming
	StateLoading
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateExtracting:
		return "extracting"
	case StateExtracted:
		return "extracted"
	case StateFailed:
		return "failed"
	case StateSummarizing:
		return "summarizing"
	case StateTransforming:
		return "transforming"
	case StateLoading:
		return "loading"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Report describes how a pipeline run ended.
type Report struct {
	RunID        string
	State        State
	Before       Summary
	After        Summary
	TransformErr error
	LoadErr      error
	Loaded       bool
}

// Degraded reports whether the run completed with a failed transform or load.
func (r *Report) Degraded() bool {
	return r.State == StateDone && (r.TransformErr != nil || r.LoadErr != nil)
}

type Pipeline struct {
	Extractor Extractor
	Loader    Loader
	Edit      models.ColumnEdit
	// Out receives the table summaries. Defaults to stdout.
	Out    io.Writer
	DryRun bool
}

func NewPipeline(ext Extractor, loader Loader, edit models.ColumnEdit, dryRun bool) *Pipeline {
	return &Pipeline{
		Extractor: ext,
		Loader:    loader,
		Edit:      edit,
		Out:       os.Stdout,
		DryRun:    dryRun,
	}
}

// Run extracts, summarizes, edits, summarizes and loads the table. A failed
// extraction ends the run. A failed edit or load is recorded in the report and
// the run continues; the returned error joins every stage error.
func (p *Pipeline) Run(ctx context.Context) (report *Report, err error) {
	report = &Report{RunID: uuid.NewString(), State: StateIdle}
	log := logger.Named("pipeline").With("run", report.RunID)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected error in ETL pipeline: %v", r)
			log.Error("pipeline aborted", "state", report.State.String(), "error", err)
		}
	}()

	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	startTime := time.Now()

	report.State = StateExtracting
	table, err := p.Extractor.Extract(ctx)
	if err != nil {
		report.State = StateFailed
		log.Error("extraction failed", "error", err)
		return report, fmt.Errorf("extract: %w", err)
	}
	if err := table.Validate(); err != nil {
		report.State = StateFailed
		log.Error("extracted table is invalid", "error", err)
		return report, fmt.Errorf("extract: %w", err)
	}
	report.State = StateExtracted
	log.Info("extracted table", "records", table.NumRows(), "columns", table.NumColumns())

	report.State = StateSummarizing
	report.Before = Summarize(out, table, "Original Data Summary")

	report.State = StateTransforming
	if !p.Edit.IsEmpty() {
		table, report.TransformErr = EditColumns(table, p.Edit)
		if report.TransformErr != nil {
			log.Error("error modifying columns", "error", report.TransformErr)
		}
	}

	report.State = StateSummarizing
	report.After = Summarize(out, table, "Processed Data Summary")

	report.State = StateLoading
	if p.DryRun {
		logger.Infof("[DRY RUN] Would load %d records", table.NumRows())
	} else if report.LoadErr = p.Loader.Load(ctx, table); report.LoadErr != nil {
		log.Error("error converting data", "error", report.LoadErr)
	} else {
		report.Loaded = true
	}

	report.State = StateDone
	log.Info("pipeline finished", "duration", time.Since(startTime).String(), "degraded", report.Degraded())

	var errs []error
	if report.TransformErr != nil {
		errs = append(errs, fmt.Errorf("transform: %w", report.TransformErr))
	}
	if report.LoadErr != nil {
		errs = append(errs, fmt.Errorf("load: %w", report.LoadErr))
	}
	return report, errors.Join(errs...)
}
