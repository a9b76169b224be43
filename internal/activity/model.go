package activity

import (
	"time"

	"gorm.io/gorm"
)

// ActivityType 定义了动态类型的枚举
type ActivityType string

const (
	// TypeGameAdded 表示用户把一个游戏加入了收藏
	TypeGameAdded ActivityType = "game_added"
	// TypeStatusChanged 表示条目状态发生了变化（不含变为已通关）
	TypeStatusChanged ActivityType = "status_changed"
	// TypeRatingAdded 表示用户新增或修改了评分
	TypeRatingAdded ActivityType = "rating_added"
	// TypeCompleted 表示条目状态变为已通关
	TypeCompleted ActivityType = "completed"
)

// Activity 定义了单条动态记录的数据结构。
// 记录是只追加的：每个符合条件的收藏变更恰好产生一条，此后不再修改。
type Activity struct {
	gorm.Model

	// UserID 是产生这条动态的用户UUID
	UserID string `gorm:"index;type:varchar(36);not null" json:"user_id"`

	// GameID 是相关游戏的目录ID
	GameID string `gorm:"not null" json:"game_id"`

	// Type 是动态的类型
	Type ActivityType `gorm:"type:varchar(20);not null" json:"type"`

	// GameName 和 GameCover 是发生时刻从目录反规范化的快照，
	// 之后目录的修改不会回写到这里
	GameName  string `json:"game_name"`
	GameCover string `json:"game_cover"`

	// Source 记录game_added动态的条目来源 (manual/steam/playstation/riot)
	Source string `json:"source,omitempty"`

	// OldValue / NewValue 是字符串化的变更前后状态或评分
	OldValue string `json:"old_value,omitempty"`
	NewValue string `json:"new_value,omitempty"`
}

// --- Redis 数据结构 ---

// feedKeyPrefix 是每用户动态缓存List的键前缀，完整键为 user:feed:<uuid>
const feedKeyPrefix = "user:feed:"

// FeedItem 定义了在Redis动态缓存中和API响应里使用的条目结构
type FeedItem struct {
	ID        uint         `json:"id"`
	GameID    string       `json:"gameId"`
	Type      ActivityType `json:"type"`
	GameName  string       `json:"gameName"`
	GameCover string       `json:"gameCover"`
	Source    string       `json:"source,omitempty"`
	OldValue  string       `json:"oldValue,omitempty"`
	NewValue  string       `json:"newValue,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

// feedItemOf 把持久化模型转换为缓存/响应用的条目。
func feedItemOf(a Activity) FeedItem {
	return FeedItem{
		ID:        a.ID,
		GameID:    a.GameID,
		Type:      a.Type,
		GameName:  a.GameName,
		GameCover: a.GameCover,
		Source:    a.Source,
		OldValue:  a.OldValue,
		NewValue:  a.NewValue,
		CreatedAt: a.CreatedAt,
	}
}
