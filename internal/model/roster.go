package model

// NoBranch 无法识别分支时使用的分支代码
const NoBranch = "NA"

// BranchMap 分支 -> 学号列表
// Branches 按分支代码升序排列，Rolls 中每个列表按字典序升序排列。
// 由 roster.Index 构建，构建后只读。
type BranchMap struct {
	Branches []string            `json:"branches"`
	Rolls    map[string][]string `json:"rolls"`
}

// Len 分支数量
func (m BranchMap) Len() int {
	return len(m.Branches)
}

// Total 学生总数
func (m BranchMap) Total() int {
	n := 0
	for _, b := range m.Branches {
		n += len(m.Rolls[b])
	}
	return n
}

// Get 获取某个分支的学号列表
func (m BranchMap) Get(branch string) []string {
	return m.Rolls[branch]
}

// Size 某个分支的人数
func (m BranchMap) Size(branch string) int {
	return len(m.Rolls[branch])
}

// BranchTotal 分支人数统计
type BranchTotal struct {
	Branch string `json:"branch"`
	Total  int    `json:"total"`
}

// Totals 按分支顺序返回各分支人数
func (m BranchMap) Totals() []BranchTotal {
	result := make([]BranchTotal, 0, len(m.Branches))
	for _, b := range m.Branches {
		result = append(result, BranchTotal{Branch: b, Total: len(m.Rolls[b])})
	}
	return result
}
