package stats

import (
	"time"

	"gorm.io/gorm"
)

// UserStats 定义了每个用户一行的派生统计聚合。
// 它只会被聚合器整体重算后覆盖，绝不被用户直接编辑。
type UserStats struct {
	// UserID 是归属用户的UUID，主键
	UserID string `gorm:"primarykey;type:varchar(36)"`

	// --- 按状态的收藏计数 ---
	// 恒等式: TotalGames = CompletedGames + WishlistGames + PlayingGames + DroppedGames
	TotalGames     int `gorm:"not null;default:0"`
	CompletedGames int `gorm:"not null;default:0"`
	WishlistGames  int `gorm:"not null;default:0"`
	PlayingGames   int `gorm:"not null;default:0"`
	DroppedGames   int `gorm:"not null;default:0"`

	// AverageRating 是用户所有已评分条目的算术平均值，保留1位小数。
	// 恒等式: AverageRating 非空 当且仅当 TotalRatings > 0
	AverageRating *float64
	TotalRatings  int `gorm:"not null;default:0"`

	// FavoriteGenre 是已通关条目中出现次数最多的游戏类型。
	// 并列时取字典序最小者；没有已通关条目时为空。
	FavoriteGenre *string

	// BadgeTier 是已通关数所能达到的最高徽章等级
	BadgeTier int `gorm:"not null;default:0"`

	// 部分gorm.Model，由GORM自动管理
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// --- Redis 数据结构 ---

// StatsKey 是一个 Redis Hash 的键，按用户UUID缓存统计聚合的JSON快照。
const StatsKey = "user:stats"

// AggregateSnapshot 定义了在Redis user:stats 哈希表中
// 以JSON格式缓存、并由API直接返回的聚合数据结构。
type AggregateSnapshot struct {
	TotalGames     int       `json:"totalGames"`
	CompletedGames int       `json:"completedGames"`
	WishlistGames  int       `json:"wishlistGames"`
	PlayingGames   int       `json:"playingGames"`
	DroppedGames   int       `json:"droppedGames"`
	AverageRating  *float64  `json:"averageRating"`
	TotalRatings   int       `json:"totalRatings"`
	FavoriteGenre  *string   `json:"favoriteGenre"`
	BadgeTier      int       `json:"badgeTier"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// snapshotOf 把持久化模型转换为缓存/响应用的快照。
func snapshotOf(agg UserStats) AggregateSnapshot {
	return AggregateSnapshot{
		TotalGames:     agg.TotalGames,
		CompletedGames: agg.CompletedGames,
		WishlistGames:  agg.WishlistGames,
		PlayingGames:   agg.PlayingGames,
		DroppedGames:   agg.DroppedGames,
		AverageRating:  agg.AverageRating,
		TotalRatings:   agg.TotalRatings,
		FavoriteGenre:  agg.FavoriteGenre,
		BadgeTier:      agg.BadgeTier,
		UpdatedAt:      agg.UpdatedAt,
	}
}
