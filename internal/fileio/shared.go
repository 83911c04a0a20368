package fileio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Table — разобранный табличный источник: по map на строку, ключи — заголовки.
// Skipped — сколько строк данных выброшено как битые.
type Table struct {
	Headers []string
	Rows    []map[string]string
	Skipped int
}

// ReadAnyMaps — выберет парсер по расширению и вернёт таблицу.
// headerRow — номер строки заголовков (1-based).
func ReadAnyMaps(r io.Reader, filename string, headerRow int) (*Table, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".xlsx":
		return readXLSX(r, headerRow)
	case ".xls":
		return readXLS(r, headerRow)
	case ".csv", ".txt":
		return readCSV(r, headerRow)
	case ".db", ".sqlite", ".sqlite3":
		return nil, fmt.Errorf("%s: %w", filename, ErrNeedsPath)
	default:
		return nil, fmt.Errorf("%s: %w", filename, ErrUnsupportedFormat)
	}
}

// ReadFile — открывает path и читает его; SQLite читается из таблицы table.
func ReadFile(path, table string, headerRow int) (*Table, error) {
	if IsSQLite(path) {
		return ReadSQLite(path, table)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadAnyMaps(f, path, headerRow)
}

// IsSQLite — true для .db/.sqlite/.sqlite3.
func IsSQLite(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// pickHeader — берёт строку заголовков, пустые называет "Column N",
// повторы переименовывает через dedupeHeaders.
func pickHeader(rows [][]string, headerRow int) []string {
	idx := headerRow - 1
	if idx < 0 || idx >= len(rows) {
		idx = 0
	}
	h := rows[idx]
	out := make([]string, len(h))
	for i, v := range h {
		if i == 0 {
			v = strings.TrimPrefix(v, "\ufeff")
		}
		v = strings.TrimSpace(v)
		if v == "" {
			v = fmt.Sprintf("Column %d", i+1)
		}
		out[i] = v
	}
	return dedupeHeaders(out)
}

// dedupeHeaders — повторяющиеся имена как в pandas: первое остаётся как есть,
// следующие получают суффикс ".1", ".2"... (пропуская уже занятые имена).
func dedupeHeaders(h []string) []string {
	used := make(map[string]struct{}, len(h))
	for _, v := range h {
		used[v] = struct{}{}
	}
	seen := make(map[string]int, len(h))
	out := make([]string, len(h))
	for i, v := range h {
		n := seen[v]
		seen[v] = n + 1
		if n == 0 {
			out[i] = v
			continue
		}
		name := fmt.Sprintf("%s.%d", v, n)
		for {
			if _, taken := used[name]; !taken {
				break
			}
			n++
			name = fmt.Sprintf("%s.%d", v, n)
		}
		seen[v] = n + 1
		used[name] = struct{}{}
		out[i] = name
	}
	return out
}

// rowsToMaps — конвертирует строки после шапки в map по заголовкам.
// strict: строки другой ширины выбрасываем; иначе короткие добиваем, лишнее
// отрезаем. Пустые строки и строки с битым UTF-8 тоже выбрасываем, всё
// выброшенное считаем в Table.Skipped.
func rowsToMaps(rows [][]string, headers []string, headerRow int, strict bool) *Table {
	t := &Table{Headers: headers}
	start := headerRow
	if start < 1 {
		start = 1
	}
	for r := start; r < len(rows); r++ {
		rec := rows[r]
		if strict && len(rec) != len(headers) {
			t.Skipped++
			continue
		}
		m := make(map[string]string, len(headers))
		empty, valid := true, true
		for c := range headers {
			var v string
			if c < len(rec) {
				v = rec[c]
			}
			if !utf8.ValidString(v) {
				valid = false
				break
			}
			if strings.TrimSpace(v) != "" {
				empty = false
			}
			m[headers[c]] = v
		}
		if empty || !valid {
			t.Skipped++
			continue
		}
		t.Rows = append(t.Rows, m)
	}
	return t
}
