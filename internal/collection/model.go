package collection

import "time"

// Status 定义了收藏条目状态的枚举类型
type Status string

const (
	// StatusWishlist 表示游戏在愿望单中
	StatusWishlist Status = "wishlist"
	// StatusPlaying 表示游戏正在游玩
	StatusPlaying Status = "playing"
	// StatusCompleted 表示游戏已通关
	StatusCompleted Status = "completed"
	// StatusDropped 表示游戏已弃坑
	StatusDropped Status = "dropped"
)

// IsValid 检查状态值是否合法
func (s Status) IsValid() bool {
	switch s {
	case StatusWishlist, StatusPlaying, StatusCompleted, StatusDropped:
		return true
	}
	return false
}

// Source 定义了收藏条目来源的枚举类型
type Source string

const (
	// SourceManual 表示用户手动添加
	SourceManual Source = "manual"
	// SourceSteam 表示由Steam账号导入
	SourceSteam Source = "steam"
	// SourcePlaystation 表示由PlayStation账号导入
	SourcePlaystation Source = "playstation"
	// SourceRiot 表示由Riot账号导入
	SourceRiot Source = "riot"
)

// IsValid 检查来源值是否合法
func (s Source) IsValid() bool {
	switch s {
	case SourceManual, SourceSteam, SourcePlaystation, SourceRiot:
		return true
	}
	return false
}

// IsExternal 返回来源是否为第三方平台导入
func (s Source) IsExternal() bool {
	return s.IsValid() && s != SourceManual
}

// Entry 定义了单条收藏条目的数据结构：每个(用户, 游戏)对恰好一行。
// 唯一索引保证同一用户重复添加同一游戏会被当作冲突而不是新行。
// 条目是硬删除的，删除后同一(用户, 游戏)对可以重新添加。
type Entry struct {
	ID uint `gorm:"primarykey" json:"id"`

	// UserID 是条目归属用户的UUID，创建后不可变
	UserID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_user_game" json:"user_id"`

	// GameID 是共享游戏目录中的游戏ID，创建后不可变
	GameID string `gorm:"not null;uniqueIndex:idx_user_game" json:"game_id"`

	// Status 是条目的当前状态
	Status Status `gorm:"type:varchar(16);not null" json:"status"`

	// Rating 是用户评分(1-10)，未评分时为nil
	Rating *int `json:"rating"`

	// Source 记录条目的来源，创建时设置
	Source Source `gorm:"type:varchar(16);not null" json:"source"`

	// PlaytimeMinutes 是游玩时长（分钟），通常只由同步任务更新
	PlaytimeMinutes int `gorm:"not null;default:0" json:"playtime_minutes"`

	// Notes 是用户的私人备注
	Notes string `json:"notes"`

	// AddedAt / UpdatedAt 由GORM自动维护
	AddedAt   time.Time `gorm:"autoCreateTime" json:"added_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
