package fileio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	xls "github.com/extrame/xls"
)

// старые выгрузки чаще всего cp1251 или cp1252, иногда UTF-8
var xlsCharsets = []string{"utf-8", "windows-1252", "windows-1251"}

// normalizeCell — trim и замена неразрывных пробелов на обычные.
func normalizeCell(s string) string {
	s = strings.NewReplacer("\u00A0", " ", "\u202F", " ").Replace(s)
	return strings.TrimSpace(s)
}

// computeMaxCols — "реальная" ширина листа: ищем самую правую непустую ячейку
// (НЕ полагаемся на Row.LastCol(), старые инструменты пишут его криво).
func computeMaxCols(sheet *xls.WorkSheet) int {
	const probeMax = 256
	maxCols := 0
	for i := 0; i <= int(sheet.MaxRow); i++ {
		r := sheet.Row(i)
		if r == nil {
			continue
		}
		for j := maxCols; j < probeMax; j++ {
			if normalizeCell(r.Col(j)) != "" {
				maxCols = j + 1
			}
		}
	}
	if maxCols == 0 {
		maxCols = 1
	}
	return maxCols
}

// readXLS — первый лист .xls. extrame/xls может паниковать на битых файлах,
// поэтому панику превращаем в ошибку.
func readXLS(r io.Reader, headerRow int) (t *Table, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			t, err = nil, fmt.Errorf("xls: malformed workbook: %v", rec)
		}
	}()
	if headerRow <= 0 {
		return nil, errors.New("headerRow must be 1-based and >= 1")
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var (
		wb      *xls.WorkBook
		lastErr error
	)
	for _, ch := range xlsCharsets {
		wb, err = xls.OpenReader(bytes.NewReader(b), ch)
		if err == nil && wb != nil {
			lastErr = nil
			break
		}
		lastErr = err
	}
	if wb == nil {
		if lastErr == nil {
			lastErr = errors.New("xls: failed to open workbook")
		}
		return nil, lastErr
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return &Table{}, nil
	}

	maxCols := computeMaxCols(sheet)
	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		cols := make([]string, maxCols)
		if row != nil {
			for j := 0; j < maxCols; j++ {
				cols[j] = normalizeCell(row.Col(j))
			}
		}
		rows = append(rows, cols)
	}
	h := pickHeader(rows, headerRow)
	return rowsToMaps(rows, h, headerRow, false), nil
}
