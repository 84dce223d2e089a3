package roster

import (
	"regexp"
	"strings"

	"groupify/internal/model"
)

// branchPattern 最左侧的 2~3 个连续大写字母，同一位置优先取 3 个
var branchPattern = regexp.MustCompile(`[A-Z]{2,3}`)

// Normalize 规范化学号：去除首尾空白并转为大写
func Normalize(roll string) string {
	return strings.ToUpper(strings.TrimSpace(roll))
}

// Classify 从学号中提取分支代码
// 例: "24CS001" -> "CS", "ABCD01" -> "ABC"，找不到时返回 "NA"
func Classify(roll string) string {
	if m := branchPattern.FindString(Normalize(roll)); m != "" {
		return m
	}
	return model.NoBranch
}
