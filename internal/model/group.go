package model

import (
	"sort"
	"strconv"
)

// BranchCount 分组内某个分支的人数
type BranchCount struct {
	Branch string `json:"branch"`
	Count  int    `json:"count"`
}

// Group 一个输出分组（编号从 1 开始）
// Counts 保持分支首次加入该组的顺序，不包含人数为 0 的分支。
type Group struct {
	Number int           `json:"number"`
	Counts []BranchCount `json:"counts"`
}

// NewGroups 创建 k 个空分组
func NewGroups(k int) []Group {
	groups := make([]Group, k)
	for i := range groups {
		groups[i] = Group{Number: i + 1, Counts: []BranchCount{}}
	}
	return groups
}

// Add 为分支增加 n 人，n <= 0 时忽略
func (g *Group) Add(branch string, n int) {
	if n <= 0 {
		return
	}
	for i := range g.Counts {
		if g.Counts[i].Branch == branch {
			g.Counts[i].Count += n
			return
		}
	}
	g.Counts = append(g.Counts, BranchCount{Branch: branch, Count: n})
}

// Count 分支在该组中的人数
func (g Group) Count(branch string) int {
	for _, c := range g.Counts {
		if c.Branch == branch {
			return c.Count
		}
	}
	return 0
}

// Total 该组总人数
func (g Group) Total() int {
	n := 0
	for _, c := range g.Counts {
		n += c.Count
	}
	return n
}

// Table 按人数降序排列的 (Branch, Count) 表
// 人数相同时保持加入顺序。
func (g Group) Table() []BranchCount {
	rows := make([]BranchCount, len(g.Counts))
	copy(rows, g.Counts)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})
	return rows
}

// Label 导出文件使用的分组名称，如 Group1
func (g Group) Label() string {
	return "Group" + strconv.Itoa(g.Number)
}
