package model

// Summary 分组概要
type Summary struct {
	TotalStudents    int           `json:"totalStudents"`
	GroupCount       int           `json:"groupCount"`
	StudentsPerGroup int           `json:"studentsPerGroup"` // 向下取整
	BranchTotals     []BranchTotal `json:"branchTotals"`     // 按人数降序
}

// Result 一次分组的完整结果
// Full Branchwise 只填 Branches，其余方式只填 Groups。
type Result struct {
	ID         string     `json:"id"`
	Method     Method     `json:"method"`
	GroupCount int        `json:"groupCount"`
	Summary    Summary    `json:"summary"`
	Branches   *BranchMap `json:"branches,omitempty"`
	Groups     []Group    `json:"groups,omitempty"`
}
