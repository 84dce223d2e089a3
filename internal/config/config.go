package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"groupify/internal/model"
)

// FileName 配置文件名，位于可执行文件同目录
const FileName = "config.toml"

// AppConfig 应用配置
type AppConfig struct {
	Server   ServerConfig   `toml:"server"`
	Grouping GroupingConfig `toml:"grouping"`
	Export   ExportConfig   `toml:"export"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port        int  `toml:"port"`
	DevMode     bool `toml:"dev_mode"`
	OpenBrowser bool `toml:"open_browser"`
}

// GroupingConfig 分组默认值（页面初始值）
type GroupingConfig struct {
	DefaultGroups int    `toml:"default_groups"`
	DefaultMethod string `toml:"default_method"`
}

// ExportConfig 导出配置
type ExportConfig struct {
	DownloadTTLMinutes int  `toml:"download_ttl_minutes"`
	MaxUploadMB        int  `toml:"max_upload_mb"`
	IncludeWorkbook    bool `toml:"include_workbook"`
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	Path          string
	Found         bool
	PortSpecified bool
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:        20251,
			DevMode:     false,
			OpenBrowser: true,
		},
		Grouping: GroupingConfig{
			DefaultGroups: 3,
			DefaultMethod: string(model.MethodFullBranchwise),
		},
		Export: ExportConfig{
			DownloadTTLMinutes: 10,
			MaxUploadMB:        16,
			IncludeWorkbook:    true,
		},
	}
}

// Validate 校验配置取值
func (c *AppConfig) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	if c.Grouping.DefaultGroups < 1 {
		return fmt.Errorf("grouping.default_groups must be at least 1, got %d", c.Grouping.DefaultGroups)
	}
	if _, err := model.ParseMethod(c.Grouping.DefaultMethod); err != nil {
		return fmt.Errorf("grouping.default_method: %w", err)
	}
	if c.Export.DownloadTTLMinutes < 1 {
		return fmt.Errorf("export.download_ttl_minutes must be at least 1, got %d", c.Export.DownloadTTLMinutes)
	}
	if c.Export.MaxUploadMB < 1 {
		return fmt.Errorf("export.max_upload_mb must be at least 1, got %d", c.Export.MaxUploadMB)
	}
	return nil
}

// DefaultMethod 默认分组方式
func (c *AppConfig) DefaultMethod() model.Method {
	m, err := model.ParseMethod(c.Grouping.DefaultMethod)
	if err != nil {
		return model.MethodFullBranchwise
	}
	return m
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverMap, ok := raw["server"].(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// DefaultPath 可执行文件同目录下的 config.toml
func DefaultPath() string {
	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}
	return filepath.Join(exeDir, FileName)
}

// LoadConfigWithInfo 从可执行文件同目录的 config.toml 加载配置
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	return LoadConfigFrom(DefaultPath())
}

// LoadConfigFrom 从指定路径加载配置，文件不存在时使用默认配置
func LoadConfigFrom(path string) (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{Path: path}
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// 配置文件不存在，使用默认配置
	case err != nil:
		return nil, info, err
	default:
		info.Found = true
		info.PortSpecified = isPortSpecifiedInToml(data)
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, info, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	// 环境变量覆盖
	if v := os.Getenv("GROUPIFY_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, info, fmt.Errorf("invalid GROUPIFY_PORT %q", v)
		}
		config.Server.Port = port
		info.PortSpecified = true
	}
	if v := os.Getenv("GROUPIFY_DEFAULT_METHOD"); v != "" {
		config.Grouping.DefaultMethod = v
	}

	if err := config.Validate(); err != nil {
		return nil, info, err
	}
	return config, info, nil
}

// SaveConfig 保存配置
func SaveConfig(config *AppConfig, path string) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
