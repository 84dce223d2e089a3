package grouping

import "groupify/internal/model"

// Mix 轮转混合分组，只返回每组各分支人数
//
// 分支游标与分组游标都从 0 开始：当前分支还有学生时取出一人计入当前分组，
// 分组游标前进一位；无论是否取到，分支游标都前进一位。直到所有分支取完。
func Mix(bm model.BranchMap, k int) ([]model.Group, error) {
	if k < 1 {
		return nil, ErrInvalidGroupCount
	}

	groups := model.NewGroups(k)
	if bm.Len() == 0 {
		return groups, nil
	}

	// 只需要队列长度，学号本身不进入结果
	remaining := make([]int, bm.Len())
	left := 0
	for i, b := range bm.Branches {
		remaining[i] = bm.Size(b)
		left += remaining[i]
	}

	g, idx := 0, 0
	for left > 0 {
		if remaining[idx] > 0 {
			remaining[idx]--
			left--
			groups[g].Add(bm.Branches[idx], 1)
			g = (g + 1) % k
		}
		idx = (idx + 1) % len(remaining)
	}

	return groups, nil
}
