package etl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BartekS5/tabconv/pkg/models"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	buffer := new(bytes.Buffer)
	summary := Summarize(buffer, abcTable(5), "Original Data Summary")

	assert.Equal(t, Summary{Title: "Original Data Summary", Records: 5, Columns: 3}, summary)
	assert.Equal(t, "Original Data Summary:\nNumber of records: 5\nNumber of columns: 3\n", buffer.String())

	empty := Summarize(new(bytes.Buffer), models.NewTable(), "Empty")
	assert.Equal(t, 0, empty.Records)
	assert.Equal(t, 0, empty.Columns)
}
