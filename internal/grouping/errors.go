package grouping

import "errors"

var (
	// ErrInvalidGroupCount 分组数必须 >= 1
	ErrInvalidGroupCount = errors.New("group count must be at least 1")
	// ErrEmptyRoster 名单为空
	ErrEmptyRoster = errors.New("roster is empty")
)
