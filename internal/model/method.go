package model

import (
	"fmt"
	"strings"
)

// Method 分组方式
type Method string

const (
	MethodFullBranchwise    Method = "branchwise" // 按分支完整列出
	MethodBranchwiseMixed   Method = "mixed"      // 轮转混合
	MethodBranchwiseUniform Method = "uniform"    // 均匀分配
)

// Methods 全部分组方式（展示顺序）
var Methods = []Method{MethodFullBranchwise, MethodBranchwiseMixed, MethodBranchwiseUniform}

// DisplayName 界面显示名称
func (m Method) DisplayName() string {
	switch m {
	case MethodFullBranchwise:
		return "Full Branchwise"
	case MethodBranchwiseMixed:
		return "Branchwise Mixed"
	case MethodBranchwiseUniform:
		return "Branchwise Uniform"
	}
	return string(m)
}

// ArchiveName 打包下载的文件名
func (m Method) ArchiveName() string {
	switch m {
	case MethodFullBranchwise:
		return "branches_all.zip"
	case MethodBranchwiseMixed:
		return "mixed_groups.zip"
	case MethodBranchwiseUniform:
		return "uniform_groups.zip"
	}
	return string(m) + ".zip"
}

// Counting 是否输出分组计数（否则输出按分支的学号列表）
func (m Method) Counting() bool {
	return m == MethodBranchwiseMixed || m == MethodBranchwiseUniform
}

// ParseMethod 解析分组方式，支持 slug 与显示名称（不区分大小写）
func ParseMethod(s string) (Method, error) {
	v := strings.TrimSpace(s)
	for _, m := range Methods {
		if strings.EqualFold(v, string(m)) || strings.EqualFold(v, m.DisplayName()) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown grouping method %q", s)
}
