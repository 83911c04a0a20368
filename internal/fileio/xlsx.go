package fileio

import (
	"bytes"
	"io"

	excelize "github.com/xuri/excelize/v2"
)

// readXLSX — первый лист .xlsx. excelize обрезает пустые ячейки в конце строки,
// поэтому короткие строки добиваем до ширины шапки, а не выбрасываем.
func readXLSX(r io.Reader, headerRow int) (*Table, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}
	h := pickHeader(rows, headerRow)
	return rowsToMaps(rows, h, headerRow, false), nil
}
