package excel

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"randist/internal/errors"
)

// Read loads a table written by WriteXLSX or WriteCSV, choosing the format
// from the file extension. Empty cells end their column.
func Read(path string) (*Table, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSV(path)
	case ".xlsx":
		rows, err = readXLSX(path)
	default:
		return nil, errors.InvalidArgument("unsupported file type: "+filepath.Ext(path), "path")
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.InvalidArgument("file has no header row: "+path, "path")
	}
	return parseRows(rows)
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return rows, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	rows, err := f.GetRows(Sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", Sheet)
	}
	return rows, nil
}

func parseRows(rows [][]string) (*Table, error) {
	t := &Table{Columns: make([]Column, len(rows[0]))}
	done := make([]bool, len(rows[0]))
	for c, name := range rows[0] {
		t.Columns[c].Name = strings.TrimSpace(name)
	}

	for r, row := range rows[1:] {
		for c := range t.Columns {
			if done[c] {
				continue
			}
			if c >= len(row) || strings.TrimSpace(row[c]) == "" {
				done[c] = true
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(row[c]), 64)
			if err != nil {
				return nil, errors.InvalidArgument("non-numeric value in column "+t.Columns[c].Name+" row "+strconv.Itoa(r+2), t.Columns[c].Name)
			}
			t.Columns[c].Values = append(t.Columns[c].Values, v)
		}
	}
	return t, nil
}
