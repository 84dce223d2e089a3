package roster

import (
	"sort"

	"groupify/internal/model"
)

// Index 按分支对学号分桶
// 每个分支内按字典序排序，分支代码升序。允许重复学号；空输入返回空 BranchMap。
func Index(rolls []string) model.BranchMap {
	buckets := make(map[string][]string)
	for _, r := range rolls {
		b := Classify(r)
		buckets[b] = append(buckets[b], r)
	}

	branches := make([]string, 0, len(buckets))
	for b, list := range buckets {
		sort.Strings(list)
		branches = append(branches, b)
	}
	sort.Strings(branches)

	return model.BranchMap{
		Branches: branches,
		Rolls:    buckets,
	}
}
