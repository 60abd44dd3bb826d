package etl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BartekS5/tabconv/pkg/models"
)

func TestValidateSource(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		src         models.SourceDescriptor
		unsupported bool
		invalid     bool
	}{
		"csv file":         {src: models.SourceDescriptor{Location: "a.csv", Kind: "file", Format: "csv"}},
		"json url":         {src: models.SourceDescriptor{Location: "http://x", Kind: "url", Format: "json"}},
		"sql table":        {src: models.SourceDescriptor{Location: "t", Kind: "sql"}},
		"mongo collection": {src: models.SourceDescriptor{Location: "c", Kind: "mongo"}},
		"xml file":         {src: models.SourceDescriptor{Location: "a.xml", Kind: "file", Format: "xml"}, unsupported: true},
		"ftp kind":         {src: models.SourceDescriptor{Location: "a", Kind: "ftp", Format: "csv"}, unsupported: true},
		"no location":      {src: models.SourceDescriptor{Kind: "file", Format: "csv"}, invalid: true},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := ValidateSource(tc.src)
			switch {
			case tc.unsupported:
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
			case tc.invalid:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSink(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateSink(models.SinkDescriptor{Format: "csv"}))
	assert.NoError(t, ValidateSink(models.SinkDescriptor{Format: "json"}))
	assert.NoError(t, ValidateSink(models.SinkDescriptor{Format: "sql", TableName: "t"}))
	assert.ErrorIs(t, ValidateSink(models.SinkDescriptor{Format: "sql"}), ErrMissingTableName)
	assert.ErrorIs(t, ValidateSink(models.SinkDescriptor{Format: "mongo"}), ErrMissingTableName)
	assert.ErrorIs(t, ValidateSink(models.SinkDescriptor{Format: "parquet"}), ErrUnsupportedFormat)
}
