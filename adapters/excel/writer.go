package excel

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"randist/internal/errors"
)

// Sheet is the worksheet samples are written to and read from
const Sheet = "Sheet1"

// WriteCSV writes t with a header row of column names
func WriteCSV(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.headers()); err != nil {
		return errors.Wrap(err, "failed to write CSV header")
	}

	record := make([]string, len(t.Columns))
	for r := 0; r < t.Rows(); r++ {
		for c, col := range t.Columns {
			record[c] = ""
			if r < len(col.Values) {
				record[c] = strconv.FormatFloat(col.Values[r], 'g', -1, 64)
			}
		}
		if err := w.Write(record); err != nil {
			return errors.Wrapf(err, "failed to write CSV row %d", r+1)
		}
	}
	w.Flush()
	return w.Error()
}

// WriteXLSX writes t to the first sheet of a new workbook. Rows are streamed
// so large sample sets do not build the whole sheet in memory.
func WriteXLSX(path string, t *Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sw, err := f.NewStreamWriter(Sheet)
	if err != nil {
		return errors.Wrap(err, "failed to open sheet writer")
	}

	header := make([]interface{}, len(t.Columns))
	for i, h := range t.headers() {
		header[i] = h
	}
	if err := sw.SetRow("A1", header); err != nil {
		return errors.Wrap(err, "failed to write header row")
	}

	row := make([]interface{}, len(t.Columns))
	for r := 0; r < t.Rows(); r++ {
		for c, col := range t.Columns {
			row[c] = nil
			if r < len(col.Values) {
				row[c] = col.Values[r]
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return errors.Wrapf(err, "row %d", r+2)
		}
		if err := sw.SetRow(cell, row); err != nil {
			return errors.Wrapf(err, "failed to write row %d", r+2)
		}
	}

	if err := sw.Flush(); err != nil {
		return errors.Wrap(err, "failed to flush sheet")
	}
	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "failed to save %s", path)
	}
	return nil
}
