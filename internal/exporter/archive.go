package exporter

import (
	"archive/zip"
	"bytes"
	"fmt"

	"groupify/internal/model"
)

// Entry 归档中的一张表，文件名为 Label + ".csv"
type Entry struct {
	Label string
	Table Table
}

// FileName 归档内文件名
func (e Entry) FileName() string {
	return e.Label + ".csv"
}

// BranchEntries 每个分支一张表，按分支顺序
func BranchEntries(bm model.BranchMap) []Entry {
	entries := make([]Entry, 0, bm.Len())
	for _, b := range bm.Branches {
		entries = append(entries, Entry{Label: b, Table: BranchTable(bm.Get(b))})
	}
	return entries
}

// GroupEntries 每个分组一张表：Group1, Group2, ...
func GroupEntries(groups []model.Group) []Entry {
	entries := make([]Entry, 0, len(groups))
	for _, g := range groups {
		entries = append(entries, Entry{Label: g.Label(), Table: CountsTable(g)})
	}
	return entries
}

// Zip 将多张表打包为 deflate 压缩的 zip
func Zip(entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, e := range entries {
		data, err := e.Table.CSV()
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", e.FileName(), err)
		}
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:   e.FileName(),
			Method: zip.Deflate,
		})
		if err != nil {
			return nil, fmt.Errorf("create zip entry %s: %w", e.FileName(), err)
		}
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("write zip entry %s: %w", e.FileName(), err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close zip: %w", err)
	}
	return buf.Bytes(), nil
}
