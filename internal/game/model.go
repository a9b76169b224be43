package game

import "gorm.io/gorm"

// Game 定义了共享游戏目录在数据库中的数据结构
type Game struct {
	// gorm.Model 包含 ID, CreatedAt, UpdatedAt, DeletedAt
	gorm.Model

	// GameID 是游戏在目录中的唯一字符串ID, 例如 "hollow-knight"
	// 我们将使用它作为业务逻辑中的主键
	GameID string `gorm:"uniqueIndex;not null" json:"id"`

	// Name 是游戏的显示名称
	Name string `json:"name"`

	// CoverURL 是游戏封面图的地址
	CoverURL string `json:"coverUrl"`

	// Genres 是游戏的类型标签列表, 例如 ["metroidvania", "platformer"]
	Genres []string `gorm:"serializer:json" json:"genres"`
}
