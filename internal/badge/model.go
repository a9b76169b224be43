package badge

import "gorm.io/gorm"

// Tier 定义了数据库中成就徽章等级的数据结构。
// 这张表是静态参考数据，在启动时播种，运行时只读。
type Tier struct {
	// gorm.Model 包含 ID, CreatedAt, UpdatedAt, DeletedAt
	gorm.Model

	// Level 是徽章等级，从0到5，数字越大等级越高
	Level int `gorm:"uniqueIndex;not null" json:"level"`

	// RequiredGames 是达到该等级所需的已通关游戏数下限
	RequiredGames int `gorm:"not null" json:"requiredGames"`

	// Name 是徽章的显示名称
	Name string `json:"name"`

	// Icon 是徽章的显示图标
	Icon string `json:"icon"`
}

// defaultTiers 是徽章等级的静态定义，按等级升序排列。
// 0级的门槛为0，保证任何用户都至少持有0级徽章。
var defaultTiers = []Tier{
	{Level: 0, RequiredGames: 0, Name: "初来乍到", Icon: "🌱"},
	{Level: 1, RequiredGames: 25, Name: "收藏新秀", Icon: "🎮"},
	{Level: 2, RequiredGames: 50, Name: "资深玩家", Icon: "🕹️"},
	{Level: 3, RequiredGames: 100, Name: "硬核通关者", Icon: "🏆"},
	{Level: 4, RequiredGames: 200, Name: "游戏鉴赏家", Icon: "👑"},
	{Level: 5, RequiredGames: 400, Name: "传说收藏家", Icon: "💎"},
}

// TierFor 返回已通关游戏数所对应的最高徽章等级。
func TierFor(completedCount int) int {
	level := 0
	for _, t := range defaultTiers {
		if completedCount >= t.RequiredGames {
			level = t.Level
		}
	}
	return level
}

// AllTiers 返回全部徽章等级定义的一份拷贝，按等级升序。
func AllTiers() []Tier {
	tiers := make([]Tier, len(defaultTiers))
	copy(tiers, defaultTiers)
	return tiers
}
