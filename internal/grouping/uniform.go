package grouping

import (
	"sort"

	"groupify/internal/model"
)

// Allocate 均匀分配：每个分支 n 人分到 k 组
// base = n/k，前 n%k 个分组各多 1 人。人数多的分支先处理，人数相同按分支代码升序。
func Allocate(bm model.BranchMap, k int) ([]model.Group, error) {
	if k < 1 {
		return nil, ErrInvalidGroupCount
	}

	groups := model.NewGroups(k)
	for _, bt := range bySizeDesc(bm) {
		base := bt.Total / k
		rem := bt.Total % k
		for g := 0; g < k; g++ {
			take := base
			if g < rem {
				take++
			}
			groups[g].Add(bt.Branch, take)
		}
	}

	return groups, nil
}

// bySizeDesc 分支按 (-人数, 分支代码) 排序
func bySizeDesc(bm model.BranchMap) []model.BranchTotal {
	totals := bm.Totals()
	sort.SliceStable(totals, func(i, j int) bool {
		if totals[i].Total != totals[j].Total {
			return totals[i].Total > totals[j].Total
		}
		return totals[i].Branch < totals[j].Branch
	})
	return totals
}
