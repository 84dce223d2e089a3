package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"groupify/internal/exporter"
	"groupify/internal/model"
)

// Options 处理器配置
type Options struct {
	DefaultGroups   int
	DefaultMethod   model.Method
	DownloadTTL     time.Duration
	MaxUploadBytes  int64
	IncludeWorkbook bool
	Version         string
}

// Handler API 处理器
// 不保存任何分组结果，只保存短期有效的下载文件。
type Handler struct {
	logger    *zap.Logger
	opts      Options
	exporter  *exporter.Exporter
	downloads *downloadStore
}

// NewHandler 创建 API 处理器
func NewHandler(logger *zap.Logger, opts Options) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.DefaultGroups < 1 {
		opts.DefaultGroups = 3
	}
	if opts.DefaultMethod == "" {
		opts.DefaultMethod = model.MethodFullBranchwise
	}
	if opts.DownloadTTL <= 0 {
		opts.DownloadTTL = 10 * time.Minute
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 16 << 20
	}
	return &Handler{
		logger:    logger,
		opts:      opts,
		exporter:  exporter.NewExporter(),
		downloads: newDownloadStore(),
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)
	router.GET("/methods", h.ListMethods)
	router.GET("/demo", h.GetDemo)

	// 分组
	router.POST("/groups", h.CreateGroups)

	// 下载
	router.GET("/export/download/:token", h.DownloadExport)
}
