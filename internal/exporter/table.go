package exporter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"groupify/internal/model"
)

// Table 二维表（首行为表头，不含索引列）
type Table struct {
	Header []string
	Rows   [][]string
}

// BranchTable 分支学号表：单列 Roll，保持原有顺序
func BranchTable(rolls []string) Table {
	rows := make([][]string, 0, len(rolls))
	for _, r := range rolls {
		rows = append(rows, []string{r})
	}
	return Table{Header: []string{"Roll"}, Rows: rows}
}

// CountsTable 分组计数表：Branch, Count，按人数降序
func CountsTable(g model.Group) Table {
	counts := g.Table()
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Branch, strconv.Itoa(c.Count)})
	}
	return Table{Header: []string{"Branch", "Count"}, Rows: rows}
}

// CSV 以 UTF-8 逗号分隔输出，包含表头
func (t Table) CSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return nil, fmt.Errorf("write csv rows: %w", err)
	}
	return buf.Bytes(), nil
}

// BranchCSV 单个分支的 CSV
func BranchCSV(rolls []string) ([]byte, error) {
	return BranchTable(rolls).CSV()
}

// CountsCSV 单个分组的 CSV
func CountsCSV(g model.Group) ([]byte, error) {
	return CountsTable(g).CSV()
}

// ParseCountsCSV 解析 CountsCSV 的输出
func ParseCountsCSV(data []byte) ([]model.BranchCount, error) {
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 || len(records[0]) != 2 || records[0][0] != "Branch" || records[0][1] != "Count" {
		return nil, fmt.Errorf("unexpected header %v", firstRecord(records))
	}

	result := make([]model.BranchCount, 0, len(records)-1)
	for i, rec := range records[1:] {
		n, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid count %q", i+2, rec[1])
		}
		result = append(result, model.BranchCount{Branch: rec[0], Count: n})
	}
	return result, nil
}

func firstRecord(records [][]string) []string {
	if len(records) == 0 {
		return nil
	}
	return records[0]
}
