package etl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BartekS5/tabconv/pkg/models"
	"github.com/BartekS5/tabconv/pkg/utils"
)

// EditColumns projects the table to the keep-list and then appends the
// constant columns of the add-list. On error the table is left unmodified.
func EditColumns(table *models.Table, edit models.ColumnEdit) (*models.Table, error) {
	for _, add := range edit.Add {
		if add.Name == "" {
			return table, errors.New("new column name must not be empty")
		}
	}

	rows := table.NumRows()
	columns := table.Columns
	if len(edit.Keep) > 0 {
		kept := make([]*models.Column, 0, len(edit.Keep))
		seen := make(map[string]bool, len(edit.Keep))
		var missing []string
		for _, name := range edit.Keep {
			if seen[name] {
				continue
			}
			seen[name] = true
			c := table.Column(name)
			if c == nil {
				missing = append(missing, name)
				continue
			}
			kept = append(kept, c)
		}
		if len(missing) > 0 {
			return table, &ColumnNotFoundError{Names: missing}
		}
		columns = kept
	}

	table.Columns = columns
	for _, add := range edit.Add {
		value := utils.NormalizeValue(add.Value)
		values := make([]interface{}, rows)
		for i := range values {
			values[i] = value
		}
		table.AddColumn(&models.Column{Name: add.Name, Values: values})
	}
	return table, nil
}

// ParseNewColumns parses "name:value" items. The value is everything after
// the first colon and stays a string.
func ParseNewColumns(items []string) ([]models.NewColumn, error) {
	var out []models.NewColumn
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		name, value, ok := strings.Cut(item, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid new column %q, expected name:value", item)
		}
		out = append(out, models.NewColumn{Name: name, Value: value})
	}
	return out, nil
}
