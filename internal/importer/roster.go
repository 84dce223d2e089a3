package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// RollColumn 名单中必须存在的列名
const RollColumn = "Roll"

var (
	// ErrUnreadable 文件无法解析
	ErrUnreadable = errors.New("could not read roster file")
	// ErrMissingRollColumn 缺少 Roll 列
	ErrMissingRollColumn = errors.New("upload must contain a column named 'Roll'")
	// ErrEmptyRoster Roll 列中没有任何学号
	ErrEmptyRoster = errors.New("no roll numbers found in 'Roll' column")
)

// Roster 读取到的名单
type Roster struct {
	FileName string   `json:"fileName"`
	Sheet    string   `json:"sheet,omitempty"`
	Rolls    []string `json:"rolls"`
	Skipped  int      `json:"skipped"` // 空单元格数量
}

// ReadRoster 按文件扩展名读取名单
// .xlsx/.xlsm 读取第一个工作表，.csv 按逗号分隔读取。
func ReadRoster(r io.Reader, fileName string) (*Roster, error) {
	var (
		roster *Roster
		err    error
	)

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		roster, err = ReadCSV(r)
	case ".xlsx", ".xlsm":
		roster, err = ReadWorkbook(r)
	default:
		return nil, fmt.Errorf("%w: unsupported file type %q", ErrUnreadable, filepath.Ext(fileName))
	}
	if err != nil {
		return nil, err
	}

	roster.FileName = fileName
	return roster, nil
}

// ReadWorkbook 从 Excel 第一个工作表读取 Roll 列
func ReadWorkbook(r io.Reader) (*Roster, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrUnreadable)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	roster, err := rollsFromRows(rows)
	if err != nil {
		return nil, err
	}
	roster.Sheet = sheets[0]
	return roster, nil
}

// ReadCSV 从 CSV 读取 Roll 列
func ReadCSV(r io.Reader) (*Roster, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	// Excel 导出的 CSV 常带 BOM
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	return rollsFromRows(rows)
}

// rollsFromRows 首行为表头，取 Roll 列的非空值
func rollsFromRows(rows [][]string) (*Roster, error) {
	if len(rows) == 0 {
		return nil, ErrMissingRollColumn
	}

	col := -1
	for i, name := range rows[0] {
		if name == RollColumn {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, ErrMissingRollColumn
	}

	roster := &Roster{Rolls: make([]string, 0, len(rows)-1)}
	for _, row := range rows[1:] {
		if col >= len(row) || row[col] == "" {
			roster.Skipped++
			continue
		}
		roster.Rolls = append(roster.Rolls, row[col])
	}

	if len(roster.Rolls) == 0 {
		return nil, ErrEmptyRoster
	}
	return roster, nil
}
