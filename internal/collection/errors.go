package collection

import "errors"

// 收藏模块对外暴露的错误。处理器用 errors.Is 把它们映射到HTTP状态码。
var (
	// ErrDuplicateEntry 表示同一用户重复添加了同一个游戏
	ErrDuplicateEntry = errors.New("该游戏已在收藏中")

	// ErrEntryNotFound 表示目标条目不存在，或不属于调用方
	ErrEntryNotFound = errors.New("找不到收藏条目")

	// ErrGameNotFound 表示游戏目录中没有这个游戏
	ErrGameNotFound = errors.New("找不到游戏")

	// ErrInvalidInput 表示输入字段不合法
	ErrInvalidInput = errors.New("输入不合法")
)
