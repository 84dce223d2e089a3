package exporter

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Workbook 每张表一个工作表
func Workbook(entries []Entry) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, e := range entries {
		sheet := e.Label
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				_ = f.Close()
				return nil, fmt.Errorf("rename sheet %s: %w", sheet, err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("create sheet %s: %w", sheet, err)
		}

		if err := writeSheet(f, sheet, e.Table); err != nil {
			_ = f.Close()
			return nil, err
		}
		_ = f.SetRowStyle(sheet, 1, 1, headerStyle)
		_ = f.SetColWidth(sheet, "A", "B", 16)
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeSheet(f *excelize.File, sheet string, t Table) error {
	header := make([]interface{}, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write %s header: %w", sheet, err)
	}

	for i, row := range t.Rows {
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = cellValue(t.Header, j, v)
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}

// cellValue Count 列写成数字，其余保持文本（学号可能全是数字）
func cellValue(header []string, col int, v string) interface{} {
	if col < len(header) && header[col] == "Count" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return v
}
