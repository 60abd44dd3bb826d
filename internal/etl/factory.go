package etl

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/BartekS5/tabconv/internal/config"
	"github.com/BartekS5/tabconv/pkg/models"
)

// Output file names inside the configured output directory.
const (
	OutputCSV  = "output.csv"
	OutputJSON = "output.json"
)

// NewExtractor validates src and builds the extractor for its kind.
func NewExtractor(cfg *config.Config, src models.SourceDescriptor) (Extractor, error) {
	if err := ValidateSource(src); err != nil {
		return nil, err
	}

	switch src.Kind {
	case models.KindFile:
		return &FileExtractor{Path: src.Location, Format: src.Format}, nil
	case models.KindURL:
		return &URLExtractor{
			URL:    src.Location,
			Format: src.Format,
			Client: &http.Client{Timeout: cfg.HTTPTimeout},
		}, nil
	case models.KindSQL:
		return &SQLExtractor{Driver: cfg.SQLDriver, DataSource: cfg.SQLDataSource(), Table: src.Location}, nil
	default:
		if cfg.MongoConnString == "" {
			return nil, fmt.Errorf("%w: MONGO_CONNECTION_STRING is not set", config.ErrInvalidConfig)
		}
		return &MongoExtractor{URI: cfg.MongoConnString, Database: cfg.MongoDatabase, Collection: src.Location}, nil
	}
}

// NewLoader validates sink and builds the loader for its format.
func NewLoader(cfg *config.Config, sink models.SinkDescriptor) (Loader, error) {
	if err := ValidateSink(sink); err != nil {
		return nil, err
	}

	switch sink.Format {
	case models.FormatCSV:
		return &FileLoader{Path: filepath.Join(cfg.OutputDir, OutputCSV), Format: models.FormatCSV}, nil
	case models.FormatJSON:
		return &FileLoader{Path: filepath.Join(cfg.OutputDir, OutputJSON), Format: models.FormatJSON}, nil
	case models.FormatSQL:
		return &SQLLoader{Driver: cfg.SQLDriver, DataSource: cfg.SQLDataSource(), Table: sink.TableName}, nil
	default:
		if cfg.MongoConnString == "" {
			return nil, fmt.Errorf("%w: MONGO_CONNECTION_STRING is not set", config.ErrInvalidConfig)
		}
		return &MongoLoader{URI: cfg.MongoConnString, Database: cfg.MongoDatabase, Collection: sink.TableName}, nil
	}
}

// Extract reads the table described by src.
func Extract(ctx context.Context, cfg *config.Config, src models.SourceDescriptor) (*models.Table, error) {
	ext, err := NewExtractor(cfg, src)
	if err != nil {
		return nil, err
	}
	return ext.Extract(ctx)
}

// Load writes table to the sink.
func Load(ctx context.Context, cfg *config.Config, table *models.Table, sink models.SinkDescriptor) error {
	loader, err := NewLoader(cfg, sink)
	if err != nil {
		return err
	}
	return loader.Load(ctx, table)
}
