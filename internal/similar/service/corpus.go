package service

import (
	"io"
	"strings"

	"defect-assistant/internal/fileio"
	"defect-assistant/internal/similar/model"
)

// LoadOptions select how a corpus file is read.
type LoadOptions struct {
	HeaderRow int    // 1-based; 0 means 1
	Table     string // SQLite table; empty means fileio.DefaultTable
}

// LoadCorpus reads a tabular stream; name picks the format by extension.
func LoadCorpus(r io.Reader, name string, headerRow int) (*model.Corpus, error) {
	if headerRow <= 0 {
		headerRow = 1
	}
	tbl, err := fileio.ReadAnyMaps(r, name, headerRow)
	if err != nil {
		return nil, &LoadError{Source: name, Err: err}
	}
	return fromTable(name, tbl), nil
}

// LoadCorpusFile reads a CSV, XLS, XLSX or SQLite file.
func LoadCorpusFile(path string, opts LoadOptions) (*model.Corpus, error) {
	if opts.HeaderRow <= 0 {
		opts.HeaderRow = 1
	}
	tbl, err := fileio.ReadFile(path, opts.Table, opts.HeaderRow)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return fromTable(path, tbl), nil
}

// fromTable keeps rows with a non-blank description, in source order.
func fromTable(source string, tbl *fileio.Table) *model.Corpus {
	c := &model.Corpus{
		Source:  source,
		Records: make([]model.Record, 0, len(tbl.Rows)),
		Skipped: tbl.Skipped,
	}
	for _, row := range tbl.Rows {
		if strings.TrimSpace(row[model.FieldDescription]) == "" {
			c.Skipped++
			continue
		}
		c.Records = append(c.Records, model.Record(row))
	}
	return c
}
