package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"groupify/internal/exporter"
	"groupify/internal/grouping"
	"groupify/internal/importer"
	"groupify/internal/metrics"
	"groupify/internal/model"
)

// CreateGroupsRequest JSON 方式提交名单
type CreateGroupsRequest struct {
	Rolls  []string `json:"rolls"`
	Groups int      `json:"groups"`
	Method string   `json:"method"`
}

// DownloadLink 下载链接
type DownloadLink struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	URL         string `json:"url"`
}

// TableView 页面展示用的一张表
type TableView struct {
	Label    string       `json:"label"`
	Total    int          `json:"total"`
	Header   []string     `json:"header"`
	Rows     [][]string   `json:"rows"`
	Download DownloadLink `json:"download"`
}

// CreateGroupsResponse 分组结果及下载链接
type CreateGroupsResponse struct {
	Result   *model.Result `json:"result"`
	Source   *SourceInfo   `json:"source,omitempty"`
	Tables   []TableView   `json:"tables"`
	Archive  DownloadLink  `json:"archive"`
	Workbook *DownloadLink `json:"workbook,omitempty"`
}

// SourceInfo 上传文件信息
type SourceInfo struct {
	FileName string `json:"fileName"`
	Sheet    string `json:"sheet,omitempty"`
	Skipped  int    `json:"skipped"`
}

// CreateGroups 上传名单并生成分组
// POST /api/groups
// multipart: file, groups, method；或 JSON: CreateGroupsRequest
func (h *Handler) CreateGroups(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.opts.MaxUploadBytes)

	var (
		rolls  []string
		source *SourceInfo
		groups = h.opts.DefaultGroups
		method = h.opts.DefaultMethod
		err    error
	)

	if c.ContentType() == gin.MIMEJSON {
		var req CreateGroupsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.reject(c, "bad_request", "invalid request body")
			return
		}
		rolls = req.Rolls
		if req.Groups != 0 {
			groups = req.Groups
		}
		if req.Method != "" {
			if method, err = model.ParseMethod(req.Method); err != nil {
				h.reject(c, "bad_method", err.Error())
				return
			}
		}
	} else {
		if v := strings.TrimSpace(c.PostForm("groups")); v != "" {
			if groups, err = strconv.Atoi(v); err != nil {
				h.reject(c, "bad_groups", fmt.Sprintf("invalid group count %q", v))
				return
			}
		}
		if v := c.PostForm("method"); v != "" {
			if method, err = model.ParseMethod(v); err != nil {
				h.reject(c, "bad_method", err.Error())
				return
			}
		}

		roster, ok := h.readUpload(c)
		if !ok {
			return
		}
		rolls = roster.Rolls
		source = &SourceInfo{FileName: roster.FileName, Sheet: roster.Sheet, Skipped: roster.Skipped}
	}

	if groups < 1 {
		h.reject(c, "bad_groups", grouping.ErrInvalidGroupCount.Error())
		return
	}

	result, err := grouping.Run(grouping.Request{Rolls: rolls, Groups: groups, Method: method})
	if err != nil {
		if errors.Is(err, grouping.ErrEmptyRoster) {
			h.reject(c, "empty_roster", importer.ErrEmptyRoster.Error())
			return
		}
		h.logger.Error("grouping failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "grouping failed"})
		return
	}

	bundle, err := h.exporter.Export(result, exporter.ExportOptions{IncludeWorkbook: h.opts.IncludeWorkbook})
	if err != nil {
		h.logger.Error("export failed", zap.String("id", result.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}

	metrics.RecordGrouping(string(method), result.Summary.TotalStudents)
	h.logger.Info("groups created",
		zap.String("id", result.ID),
		zap.String("method", string(method)),
		zap.Int("groups", groups),
		zap.Int("students", result.Summary.TotalStudents),
		zap.Int("branches", len(result.Summary.BranchTotals)),
	)

	c.JSON(http.StatusOK, h.buildResponse(c, result, source, bundle))
}

// readUpload 读取上传的名单文件，失败时已写入响应
func (h *Handler) readUpload(c *gin.Context) (*importer.Roster, bool) {
	header, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.reject(c, "too_large", "uploaded file is too large")
			return nil, false
		}
		h.reject(c, "no_file", "no roster file uploaded")
		return nil, false
	}

	f, err := header.Open()
	if err != nil {
		h.reject(c, "unreadable", "Could not read file: "+err.Error())
		return nil, false
	}
	defer f.Close()

	roster, err := importer.ReadRoster(f, header.Filename)
	switch {
	case err == nil:
		return roster, true
	case errors.Is(err, importer.ErrMissingRollColumn):
		h.reject(c, "missing_column", err.Error())
	case errors.Is(err, importer.ErrEmptyRoster):
		h.reject(c, "empty_roster", err.Error())
	default:
		h.reject(c, "unreadable", "Could not read file: "+err.Error())
	}
	return nil, false
}

func (h *Handler) reject(c *gin.Context, reason, message string) {
	metrics.RecordRejected(reason)
	h.logger.Warn("request rejected", zap.String("reason", reason), zap.String("error", message))
	c.JSON(http.StatusBadRequest, gin.H{"error": message, "reason": reason})
}

func (h *Handler) buildResponse(c *gin.Context, result *model.Result, source *SourceInfo, bundle *exporter.Bundle) CreateGroupsResponse {
	resp := CreateGroupsResponse{
		Result:  result,
		Source:  source,
		Tables:  make([]TableView, 0, len(bundle.Tables)),
		Archive: h.publish(c, bundle.Archive),
	}
	if bundle.Workbook != nil {
		link := h.publish(c, *bundle.Workbook)
		resp.Workbook = &link
	}

	entries, _ := exporter.Entries(result)
	for i, entry := range entries {
		resp.Tables = append(resp.Tables, TableView{
			Label:    entry.Label,
			Total:    len(entry.Table.Rows),
			Header:   entry.Table.Header,
			Rows:     entry.Table.Rows,
			Download: h.publish(c, bundle.Tables[i]),
		})
	}
	if result.Method.Counting() {
		for i := range resp.Tables {
			resp.Tables[i].Total = result.Groups[i].Total()
		}
	}
	return resp
}

func (h *Handler) publish(c *gin.Context, file exporter.File) DownloadLink {
	token := h.downloads.put(file, h.opts.DownloadTTL)
	return DownloadLink{
		Name:        file.Name,
		ContentType: file.ContentType,
		URL:         downloadPrefix(c) + "/export/download/" + token,
	}
}

func downloadPrefix(c *gin.Context) string {
	path := c.FullPath()
	if i := strings.Index(path, "/groups"); i >= 0 {
		return path[:i]
	}
	return "/api"
}

// DownloadExport 下载导出文件（有效期内可重复下载）
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing token"})
		return
	}

	file, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "download link expired"})
		return
	}

	metrics.RecordDownload(file.ContentType)
	c.Header("Content-Disposition", buildContentDisposition(file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

func buildContentDisposition(name string) string {
	return fmt.Sprintf("attachment; filename=%q; filename*=UTF-8''%s", name, url.PathEscape(name))
}
