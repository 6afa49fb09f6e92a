package pipeline

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// ReadTable parses an uploaded spreadsheet into rows of cells. The format is
// chosen by file extension: .xlsx via excelize, legacy .xls via extrame/xls,
// .csv as comma-delimited text. Only the first sheet is read.
func ReadTable(filename string, data []byte) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return readXLSX(data)
	case ".xls":
		return readXLS(data)
	case ".csv", ".txt", "":
		return readCSV(data)
	}
	return nil, Errorf(KindMalformed, "unsupported file type: %s", filename)
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, Errorf(KindMalformed, "failed to open workbook: %v", err)
	}
	defer f.Close()
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, Errorf(KindMalformed, "failed to read sheet %q: %v", sheet, err)
	}
	return rows, nil
}

func readXLS(data []byte) ([][]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, Errorf(KindMalformed, "failed to open xls workbook: %v", err)
	}
	if wb.NumSheets() == 0 {
		return nil, Errorf(KindMalformed, "xls workbook has no sheets")
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, Errorf(KindMalformed, "xls workbook first sheet unreadable")
	}
	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, row.LastCol())
		for j := 0; j < row.LastCol(); j++ {
			cells[j] = row.Col(j)
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

func readCSV(data []byte) ([][]string, error) {
	text, err := DecodeText(data)
	if err != nil {
		return nil, err
	}
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, Errorf(KindMalformed, "failed to parse csv: %v", err)
	}
	return rows, nil
}
