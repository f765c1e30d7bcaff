// Package export writes dashboard list pages out as XLSX workbooks.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Table renders one sheet: a bold header row followed by the data rows,
// with columns sized to fit. Exactly the rows passed in are written; the
// caller decides which page of data to export.
func Table(sheet string, headers []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("export: new sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("export: header row: %w", err)
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		end, _ := excelize.CoordinatesToCellName(len(headers), 1)
		_ = f.SetCellStyle(sheet, "A1", end, boldStyle)
	}

	for i, row := range rows {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, fmt.Errorf("export: row %d: %w", i+2, err)
		}
	}

	widths := columnWidths(headers, rows)
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheet, col, col, w)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: write: %w", err)
	}
	return buf.Bytes(), nil
}

func columnWidths(headers []string, rows [][]string) []float64 {
	widths := make([]float64, len(headers))
	for i, h := range headers {
		widths[i] = float64(len(h))
	}
	for _, row := range rows {
		for i, v := range row {
			if i < len(widths) && float64(len(v)) > widths[i] {
				widths[i] = float64(len(v))
			}
		}
	}
	for i := range widths {
		widths[i] += 2
		if widths[i] > 60 {
			widths[i] = 60
		}
	}
	return widths
}

// ContentType is the MIME type browsers expect for XLSX downloads.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
