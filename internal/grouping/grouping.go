package grouping

import (
	"fmt"

	"github.com/google/uuid"

	"groupify/internal/model"
	"groupify/internal/roster"
)

// Request 一次分组请求
// 调用方每次都传入完整参数，服务端不保留任何状态。
type Request struct {
	Rolls  []string
	Groups int
	Method model.Method
}

// Run 根据分组方式生成结果
func Run(req Request) (*model.Result, error) {
	if len(req.Rolls) == 0 {
		return nil, ErrEmptyRoster
	}
	if req.Groups < 1 {
		return nil, ErrInvalidGroupCount
	}

	bm := roster.Index(req.Rolls)
	result := &model.Result{
		ID:         uuid.New().String(),
		Method:     req.Method,
		GroupCount: req.Groups,
		Summary:    Summarize(bm, req.Groups),
	}

	var err error
	switch req.Method {
	case model.MethodFullBranchwise:
		result.Branches = &bm
	case model.MethodBranchwiseMixed:
		result.Groups, err = Mix(bm, req.Groups)
	case model.MethodBranchwiseUniform:
		result.Groups, err = Allocate(bm, req.Groups)
	default:
		return nil, fmt.Errorf("unsupported grouping method %q", req.Method)
	}
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Summarize 统计总人数、每组人数（向下取整）以及各分支人数（降序）
func Summarize(bm model.BranchMap, k int) model.Summary {
	s := model.Summary{
		TotalStudents: bm.Total(),
		GroupCount:    k,
		BranchTotals:  bySizeDesc(bm),
	}
	if k > 0 {
		s.StudentsPerGroup = s.TotalStudents / k
	}
	return s
}
