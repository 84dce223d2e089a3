package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"groupify/internal/model"
)

// DemoRolls 未上传名单时展示的示例
var DemoRolls = []string{"24CS001", "24CS002", "24EE001", "24ME002", "24CS003", "24EE004", "24MM005", "24CS006"}

// StatusResponse 系统状态
type StatusResponse struct {
	Version       string `json:"version"`
	DefaultGroups int    `json:"defaultGroups"`
	DefaultMethod string `json:"defaultMethod"`
	RollColumn    string `json:"rollColumn"`
	Downloads     int    `json:"downloads"` // 当前可下载文件数
}

// MethodInfo 分组方式说明
type MethodInfo struct {
	ID          model.Method `json:"id"`
	Name        string       `json:"name"`
	ArchiveName string       `json:"archiveName"`
	Counting    bool         `json:"counting"`
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Version:       h.opts.Version,
		DefaultGroups: h.opts.DefaultGroups,
		DefaultMethod: string(h.opts.DefaultMethod),
		RollColumn:    "Roll",
		Downloads:     h.downloads.len(),
	})
}

// ListMethods 可选的分组方式
// GET /api/methods
func (h *Handler) ListMethods(c *gin.Context) {
	methods := make([]MethodInfo, 0, len(model.Methods))
	for _, m := range model.Methods {
		methods = append(methods, MethodInfo{
			ID:          m,
			Name:        m.DisplayName(),
			ArchiveName: m.ArchiveName(),
			Counting:    m.Counting(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"methods": methods})
}

// GetDemo 示例名单
// GET /api/demo
func (h *Handler) GetDemo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"column": "Roll",
		"rolls":  DemoRolls,
	})
}
