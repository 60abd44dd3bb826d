package etl

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/BartekS5/tabconv/pkg/models"
	"github.com/BartekS5/tabconv/pkg/utils"
)

// ReadJSON parses a JSON document into a table. It accepts an array of
// records, where each record is an object or an array of positional values,
// or an object of columns, where each column is an array of values or an
// object keyed by row label. Key order is preserved and object columns are
// aligned on the union of their row labels.
func ReadJSON(r io.Reader) (*models.Table, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	var table *models.Table
	switch tok {
	case json.Delim('['):
		table, err = readRecords(dec)
	case json.Delim('{'):
		table, err = readColumns(dec)
	default:
		return nil, fmt.Errorf("failed to parse JSON: expected an array or an object, got %v", tok)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	for _, c := range table.Columns {
		c.Values = utils.UnifyColumn(c.Values)
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

func readRecords(dec *json.Decoder) (*models.Table, error) {
	table := models.NewTable()
	rows := 0
	set := func(key string, value interface{}) error {
		c := table.Column(key)
		if c == nil {
			c = &models.Column{Name: key, Values: make([]interface{}, rows)}
			table.Columns = append(table.Columns, c)
		}
		if len(c.Values) > rows {
			return fmt.Errorf("record %d repeats key %q", rows, key)
		}
		c.Values = append(c.Values, value)
		return nil
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch tok {
		case json.Delim('{'):
			for dec.More() {
				key, value, err := readMember(dec)
				if err != nil {
					return nil, err
				}
				if err := set(key, value); err != nil {
					return nil, err
				}
			}
		case json.Delim('['):
			for i := 0; dec.More(); i++ {
				var value interface{}
				if err := dec.Decode(&value); err != nil {
					return nil, err
				}
				if err := set(strconv.Itoa(i), value); err != nil {
					return nil, err
				}
			}
		default:
			return nil, fmt.Errorf("record %d is not an object or an array", rows)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		rows++
		for _, c := range table.Columns {
			if len(c.Values) < rows {
				c.Values = append(c.Values, nil)
			}
		}
	}
	_, err := dec.Token()
	return table, err
}

// labeledColumn holds the values of one column of an object of columns,
// keyed by row label. Array columns use their positions as labels.
type labeledColumn struct {
	name       string
	labels     []string
	values     map[string]interface{}
	positional bool
}

func readColumns(dec *json.Decoder) (*models.Table, error) {
	var columns []*labeledColumn
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		col, err := columnValues(key, raw)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", key, err)
		}
		replaced := false
		for i, existing := range columns {
			if existing.name == key {
				columns[i] = col
				replaced = true
			}
		}
		if !replaced {
			columns = append(columns, col)
		}
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	var index []string
	seen := make(map[string]bool)
	for _, col := range columns {
		for _, label := range col.labels {
			if !seen[label] {
				seen[label] = true
				index = append(index, label)
			}
		}
	}

	table := models.NewTable()
	for _, col := range columns {
		if col.positional && len(col.labels) != len(index) {
			return nil, fmt.Errorf("column %q has %d values, expected %d", col.name, len(col.labels), len(index))
		}
		values := make([]interface{}, len(index))
		for i, label := range index {
			values[i] = col.values[label]
		}
		table.Columns = append(table.Columns, &models.Column{Name: col.name, Values: values})
	}
	return table, nil
}

func columnValues(name string, raw json.RawMessage) (*labeledColumn, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	col := &labeledColumn{name: name, values: make(map[string]interface{})}
	add := func(label string, value interface{}) {
		if _, ok := col.values[label]; !ok {
			col.labels = append(col.labels, label)
		}
		col.values[label] = value
	}

	switch tok {
	case json.Delim('['):
		col.positional = true
		for i := 0; dec.More(); i++ {
			var v interface{}
			if err := dec.Decode(&v); err != nil {
				return nil, err
			}
			add(strconv.Itoa(i), v)
		}
	case json.Delim('{'):
		for dec.More() {
			label, v, err := readMember(dec)
			if err != nil {
				return nil, err
			}
			add(label, v)
		}
	default:
		return nil, errors.New("all scalar values: expected an array or an object of values")
	}
	return col, nil
}

func readMember(dec *json.Decoder) (string, interface{}, error) {
	keyTok, err := dec.Token()
	if err != nil {
		return "", nil, err
	}
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return "", nil, err
	}
	return keyTok.(string), v, nil
}

// WriteJSON writes the table as an array of records with keys in column order.
func WriteJSON(w io.Writer, table *models.Table) error {
	bw := bufio.NewWriter(w)
	names := make([][]byte, table.NumColumns())
	for i, name := range table.ColumnNames() {
		b, err := json.Marshal(name)
		if err != nil {
			return err
		}
		names[i] = b
	}

	bw.WriteByte('[')
	for i := 0; i < table.NumRows(); i++ {
		if i > 0 {
			bw.WriteByte(',')
		}
		bw.WriteByte('{')
		for j, c := range table.Columns {
			if j > 0 {
				bw.WriteByte(',')
			}
			bw.Write(names[j])
			bw.WriteByte(':')
			v, err := jsonValue(c.Values[i])
			if err != nil {
				return err
			}
			bw.Write(v)
		}
		bw.WriteByte('}')
	}
	bw.WriteByte(']')
	return bw.Flush()
}

func jsonValue(val interface{}) ([]byte, error) {
	if f, ok := val.(float64); ok {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return []byte("null"), nil
		}
		return []byte(utils.FormatCell(f)), nil
	}
	return json.Marshal(val)
}
