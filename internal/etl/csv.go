package etl

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BartekS5/tabconv/pkg/models"
	"github.com/BartekS5/tabconv/pkg/utils"
)

// ReadCSV parses CSV text with a header row into a table. Short rows are
// padded with empty cells; rows longer than the header are an error.
func ReadCSV(r io.Reader) (*models.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("no columns to parse from CSV input")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	names := headerNames(header)

	cells := make([][]string, len(names))
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		line++
		if len(record) > len(names) {
			return nil, fmt.Errorf("CSV line %d: expected %d fields, saw %d", line, len(names), len(record))
		}
		for i := range names {
			cell := ""
			if i < len(record) {
				cell = record[i]
			}
			cells[i] = append(cells[i], cell)
		}
	}

	table := models.NewTable()
	for i, name := range names {
		table.Columns = append(table.Columns, &models.Column{Name: name, Values: utils.InferColumn(cells[i])})
	}
	return table, nil
}

// headerNames strips a leading BOM, names blank headers "Unnamed: i" and
// suffixes repeated names with ".1", ".2", ...
func headerNames(header []string) []string {
	names := make([]string, len(header))
	used := make(map[string]bool, len(header))
	dups := make(map[string]int)
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		base := name
		for used[name] {
			dups[base]++
			name = base + "." + strconv.Itoa(dups[base])
		}
		used[name] = true
		names[i] = name
	}
	return names
}

// WriteCSV writes the table with a header row and no index column.
func WriteCSV(w io.Writer, table *models.Table) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(table.ColumnNames()); err != nil {
		return err
	}

	record := make([]string, table.NumColumns())
	for i := 0; i < table.NumRows(); i++ {
		for j, c := range table.Columns {
			record[j] = utils.FormatCell(c.Values[i])
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
