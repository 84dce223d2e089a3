package exporter

import (
	"errors"
	"fmt"
	"strings"

	"groupify/internal/model"
)

const (
	ContentTypeCSV  = "text/csv"
	ContentTypeZip  = "application/zip"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// File 可下载的文件
type File struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"-"`
}

// Bundle 一次分组结果的全部导出文件
type Bundle struct {
	Tables   []File // 每个分支/分组一个 CSV
	Archive  File   // 全部 CSV 的 zip
	Workbook *File  // 可选的 xlsx，每张表一个工作表
}

// Exporter 分组结果导出器
type Exporter struct{}

// NewExporter 创建导出器
func NewExporter() *Exporter {
	return &Exporter{}
}

// ExportOptions 导出选项
type ExportOptions struct {
	IncludeWorkbook bool
	Progress        func(ProgressEvent)
}

// Entries 分组结果对应的表：Full Branchwise 按分支，其余按分组
func Entries(result *model.Result) ([]Entry, error) {
	if result == nil {
		return nil, errors.New("nil result")
	}
	if result.Method.Counting() {
		return GroupEntries(result.Groups), nil
	}
	if result.Branches == nil {
		return nil, errors.New("branchwise result without branches")
	}
	return BranchEntries(*result.Branches), nil
}

// Export 生成单表 CSV、zip 以及可选的 xlsx
func (e *Exporter) Export(result *model.Result, opts ExportOptions) (*Bundle, error) {
	entries, err := Entries(result)
	if err != nil {
		return nil, err
	}

	// CSV 每张一步，zip、xlsx 各一步
	steps := len(entries) + 1
	if opts.IncludeWorkbook {
		steps++
	}

	bundle := &Bundle{Tables: make([]File, 0, len(entries))}
	for i, entry := range entries {
		data, err := entry.Table.CSV()
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", entry.FileName(), err)
		}
		bundle.Tables = append(bundle.Tables, File{
			Name:        entry.FileName(),
			ContentType: ContentTypeCSV,
			Data:        data,
		})
		reportProgress(opts.Progress, i+1, steps, entry.FileName())
	}

	archiveName := result.Method.ArchiveName()
	data, err := Zip(entries)
	if err != nil {
		return nil, err
	}
	bundle.Archive = File{Name: archiveName, ContentType: ContentTypeZip, Data: data}
	reportProgress(opts.Progress, len(entries)+1, steps, archiveName)

	if opts.IncludeWorkbook && len(entries) > 0 {
		f, err := Workbook(entries)
		if err != nil {
			return nil, err
		}
		buf, err := f.WriteToBuffer()
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("write workbook: %w", err)
		}
		name := strings.TrimSuffix(archiveName, ".zip") + ".xlsx"
		bundle.Workbook = &File{Name: name, ContentType: ContentTypeXLSX, Data: buf.Bytes()}
		reportProgress(opts.Progress, steps, steps, name)
	}

	return bundle, nil
}
