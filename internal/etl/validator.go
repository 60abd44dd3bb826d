package etl

import (
	"errors"

	"github.com/BartekS5/tabconv/pkg/models"
)

// ValidateSource checks a source descriptor without touching the source.
func ValidateSource(src models.SourceDescriptor) error {
	switch src.Kind {
	case models.KindFile, models.KindURL:
		if src.Format != models.FormatCSV && src.Format != models.FormatJSON {
			return unsupported("input format", src.Format)
		}
	case models.KindSQL, models.KindMongo:
	default:
		return unsupported("source type", src.Kind)
	}

	if src.Location == "" {
		return errors.New("source location must not be empty")
	}
	return nil
}

// ValidateSink checks a sink descriptor without touching the sink.
func ValidateSink(sink models.SinkDescriptor) error {
	switch sink.Format {
	case models.FormatCSV, models.FormatJSON:
		return nil
	case models.FormatSQL, models.FormatMongo:
		if sink.TableName == "" {
			return ErrMissingTableName
		}
		return nil
	default:
		return unsupported("output format", sink.Format)
	}
}
