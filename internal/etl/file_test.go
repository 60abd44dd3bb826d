package etl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BartekS5/tabconv/pkg/models"
)

func TestFileLoaderThenExtractor(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()

	for _, format := range []string{models.FormatCSV, models.FormatJSON} {
		t.Run(format, func(t *testing.T) {
			table := fakeTable(11, 8)
			path := filepath.Join(dir, "output."+format)

			loader := &FileLoader{Path: path, Format: format}
			require.NoError(t, loader.Load(ctx, table))

			extractor := &FileExtractor{Path: path, Format: format}
			read, err := extractor.Extract(ctx)
			require.NoError(t, err)
			assert.Equal(t, table, read)
		})
	}
}

func TestFileExtractorErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()

	_, err := (&FileExtractor{Path: filepath.Join(dir, "missing.csv"), Format: "csv"}).Extract(ctx)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(dir, "data.xml")
	require.NoError(t, os.WriteFile(path, []byte("<a/>"), 0o644))
	_, err = (&FileExtractor{Path: path, Format: "xml"}).Extract(ctx)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFileLoaderUnsupportedFormat(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "output.xml")
	err := (&FileLoader{Path: path, Format: "xml"}).Load(context.Background(), abcTable(1))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.NoFileExists(t, path)
}
