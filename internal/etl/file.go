package etl

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/BartekS5/tabconv/pkg/logger"
	"github.com/BartekS5/tabconv/pkg/models"
)

// FileExtractor reads a table from a local CSV or JSON file.
type FileExtractor struct {
	Path   string
	Format string
}

func (f *FileExtractor) Extract(_ context.Context) (*models.Table, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source file: %w", err)
	}
	defer file.Close()

	return decode(file, f.Format)
}

func decode(r io.Reader, format string) (*models.Table, error) {
	switch format {
	case models.FormatCSV:
		return ReadCSV(r)
	case models.FormatJSON:
		return ReadJSON(r)
	default:
		return nil, unsupported("input format", format)
	}
}

// FileLoader writes a table to a local CSV or JSON file, replacing it.
type FileLoader struct {
	Path   string
	Format string
}

func (f *FileLoader) Load(_ context.Context, table *models.Table) error {
	var write func(io.Writer, *models.Table) error
	switch f.Format {
	case models.FormatCSV:
		write = WriteCSV
	case models.FormatJSON:
		write = WriteJSON
	default:
		return unsupported("output format", f.Format)
	}

	file, err := os.Create(f.Path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := write(file, table); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", f.Path, err)
	}
	if err := file.Close(); err != nil {
		return err
	}

	logger.Infof("File Loader: wrote %d records to %s", table.NumRows(), f.Path)
	return nil
}
