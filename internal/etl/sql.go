package etl

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/BartekS5/tabconv/pkg/database"
	"github.com/BartekS5/tabconv/pkg/logger"
	"github.com/BartekS5/tabconv/pkg/models"
	"github.com/BartekS5/tabconv/pkg/utils"
)

// SQLExtractor reads a whole table from a SQL store.
type SQLExtractor struct {
	Driver     string
	DataSource string
	Table      string
}

func (s *SQLExtractor) Extract(ctx context.Context) (*models.Table, error) {
	dialect, err := database.DialectFor(s.Driver)
	if err != nil {
		return nil, err
	}
	db, err := database.ConnectSQL(ctx, s.Driver, s.DataSource)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, "SELECT * FROM "+dialect.Quote(s.Table))
	if err != nil {
		return nil, fmt.Errorf("failed to query table %s: %w", s.Table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	table := models.NewTable()
	for _, name := range cols {
		table.Columns = append(table.Columns, &models.Column{Name: name, Values: []interface{}{}})
	}

	values := make([]interface{}, len(cols))
	pointers := make([]interface{}, len(cols))
	for i := range values {
		pointers[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}
		for i, c := range table.Columns {
			c.Values = append(c.Values, utils.NormalizeValue(values[i]))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, c := range table.Columns {
		c.Values = utils.UnifyColumn(c.Values)
	}
	return table, nil
}

// SQLLoader writes a table into a SQL store, replacing any table with the same name.
type SQLLoader struct {
	Driver     string
	DataSource string
	Table      string
}

func (l *SQLLoader) Load(ctx context.Context, table *models.Table) error {
	if l.Table == "" {
		return ErrMissingTableName
	}
	if table.NumColumns() == 0 {
		return errors.New("cannot write a table without columns")
	}
	dialect, err := database.DialectFor(l.Driver)
	if err != nil {
		return err
	}

	db, err := database.ConnectSQL(ctx, l.Driver, l.DataSource)
	if err != nil {
		return err
	}
	defer db.Close()

	err = database.RunInTx(ctx, db, func(tx *sql.Tx) error {
		return replaceTable(ctx, tx, dialect, l.Table, table)
	})
	if err != nil {
		return fmt.Errorf("failed to write table %s: %w", l.Table, err)
	}

	logger.Infof("SQL Loader: wrote %d records to table %s", table.NumRows(), l.Table)
	return nil
}

func replaceTable(ctx context.Context, tx *sql.Tx, dialect database.Dialect, name string, table *models.Table) error {
	quoted := dialect.Quote(name)
	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+quoted); err != nil {
		return err
	}

	defs := make([]string, table.NumColumns())
	colNames := make([]string, table.NumColumns())
	placeholders := make([]string, table.NumColumns())
	for i, c := range table.Columns {
		colNames[i] = dialect.Quote(c.Name)
		defs[i] = colNames[i] + " " + dialect.ColumnTypes[utils.ColumnKind(c.Values)]
		placeholders[i] = dialect.Placeholder(i + 1)
	}
	create := fmt.Sprintf("CREATE TABLE %s (%s)", quoted, strings.Join(defs, ", "))
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return err
	}

	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoted, strings.Join(colNames, ", "), strings.Join(placeholders, ", "))
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := 0; i < table.NumRows(); i++ {
		if _, err := stmt.ExecContext(ctx, table.Row(i)...); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	return nil
}
