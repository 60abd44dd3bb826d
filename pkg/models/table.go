package models

import "fmt"

// Column is a named, positionally aligned sequence of cell values.
// Values are nil, int64, float64, bool or string.
type Column struct {
	Name   string
	Values []interface{}
}

// Table is an ordered collection of columns of equal length.
type Table struct {
	Columns []*Column
}

func NewTable(columns ...*Column) *Table {
	return &Table{Columns: columns}
}

// Validate checks that every column has the same length and that names are unique.
func (t *Table) Validate() error {
	seen := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		if seen[c.Name] {
			return fmt.Errorf("duplicate column %q", c.Name)
		}
		seen[c.Name] = true
		if len(c.Values) != len(t.Columns[0].Values) {
			return fmt.Errorf("column %q has %d values, expected %d", c.Name, len(c.Values), len(t.Columns[0].Values))
		}
	}
	return nil
}

func (t *Table) NumRows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

func (t *Table) NumColumns() int {
	return len(t.Columns)
}

func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the column with the given name, or nil.
func (t *Table) Column(name string) *Column {
	for _, c := range t.Columns {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// AddColumn appends c, or replaces the values of an existing column with the same name.
func (t *Table) AddColumn(c *Column) {
	if existing := t.Column(c.Name); existing != nil {
		existing.Values = c.Values
		return
	}
	t.Columns = append(t.Columns, c)
}

// Row returns the values of row i in column order.
func (t *Table) Row(i int) []interface{} {
	row := make([]interface{}, len(t.Columns))
	for j, c := range t.Columns {
		row[j] = c.Values[i]
	}
	return row
}
