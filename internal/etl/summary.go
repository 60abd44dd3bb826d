package etl

import (
	"fmt"
	"io"

	"github.com/BartekS5/tabconv/pkg/models"
)

type Summary struct {
	Title   string
	Records int
	Columns int
}

// Summarize writes the row and column counts of the table under a title.
func Summarize(w io.Writer, table *models.Table, title string) Summary {
	s := Summary{Title: title, Records: table.NumRows(), Columns: table.NumColumns()}
	fmt.Fprintf(w, "%s:\nNumber of records: %d\nNumber of columns: %d\n", s.Title, s.Records, s.Columns)
	return s
}
