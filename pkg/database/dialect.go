package database

import (
	"fmt"
	"strings"

	"github.com/BartekS5/tabconv/pkg/utils"
)

const (
	DriverSQLite    = "sqlite3"
	DriverSQLServer = "sqlserver"
)

// Dialect holds the syntax differences between the supported SQL drivers.
type Dialect struct {
	Driver          string
	ListTablesQuery string
	// ColumnTypes maps a utils column kind to a SQL type name.
	ColumnTypes map[string]string
	openQuote   string
	closeQuote  string
	positional  bool
}

var dialects = map[string]Dialect{
	DriverSQLite: {
		Driver:          DriverSQLite,
		ListTablesQuery: "SELECT name FROM sqlite_master WHERE type='table' ORDER BY name",
		ColumnTypes: map[string]string{
			utils.KindInt:    "INTEGER",
			utils.KindFloat:  "REAL",
			utils.KindBool:   "BOOLEAN",
			utils.KindString: "TEXT",
			utils.KindNull:   "TEXT",
		},
		openQuote:  `"`,
		closeQuote: `"`,
	},
	DriverSQLServer: {
		Driver:          DriverSQLServer,
		ListTablesQuery: "SELECT name FROM sys.tables ORDER BY name",
		ColumnTypes: map[string]string{
			utils.KindInt:    "BIGINT",
			utils.KindFloat:  "FLOAT",
			utils.KindBool:   "BIT",
			utils.KindString: "NVARCHAR(MAX)",
			utils.KindNull:   "NVARCHAR(MAX)",
		},
		openQuote:  "[",
		closeQuote: "]",
		positional: true,
	},
}

// DialectFor returns the dialect of a supported driver.
func DialectFor(driver string) (Dialect, error) {
	d, ok := dialects[driver]
	if !ok {
		return Dialect{}, fmt.Errorf("unsupported SQL driver %q", driver)
	}
	return d, nil
}

// Quote quotes an identifier, escaping the closing quote character.
func (d Dialect) Quote(name string) string {
	return d.openQuote + strings.ReplaceAll(name, d.closeQuote, d.closeQuote+d.closeQuote) + d.closeQuote
}

// Placeholder returns the bind parameter for the 1-based argument n.
func (d Dialect) Placeholder(n int) string {
	if d.positional {
		return fmt.Sprintf("@p%d", n)
	}
	return "?"
}
