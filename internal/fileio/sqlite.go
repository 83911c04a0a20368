package fileio

import (
	"database/sql"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "github.com/glebarez/go-sqlite"
)

// DefaultTable is the table read from SQLite corpora when none is named.
const DefaultTable = "defects"

// ReadSQLite reads every row of table from the database at path. Column names
// become map keys; NULL becomes "". A row that fails to scan is skipped.
func ReadSQLite(path, table string) (*Table, error) {
	if table == "" {
		table = DefaultTable
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query("SELECT * FROM " + quoteIdent(table))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	cols = dedupeHeaders(cols)

	t := &Table{Headers: cols}
	vals := make([]sql.NullString, len(cols))
	dest := make([]any, len(cols))
	for i := range vals {
		dest[i] = &vals[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			t.Skipped++
			continue
		}
		m := make(map[string]string, len(cols))
		valid := true
		for i, c := range cols {
			if !utf8.ValidString(vals[i].String) {
				valid = false
				break
			}
			m[c] = vals[i].String
		}
		if !valid {
			t.Skipped++
			continue
		}
		t.Rows = append(t.Rows, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
