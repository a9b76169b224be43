package activity

import (
	"fmt"
	"time"

	"github.com/SlpAus/game-shelf-backend/internal/platform/config"
	"github.com/SlpAus/game-shelf-backend/internal/platform/database"
)

// ConfigureModule 按配置覆盖动态缓存参数
func ConfigureModule(cfg config.CacheConfig) {
	if cfg.FeedLength > 0 {
		feedCacheLength = cfg.FeedLength
	}
	if cfg.FeedTTLMinutes > 0 {
		feedCacheTTL = time.Duration(cfg.FeedTTLMinutes) * time.Minute
	}
}

// PrimeDB 负责初始化activity模块的数据库部分。
// 动态缓存是读穿式的，启动时无需预热。
func PrimeDB() error {
	if err := database.DB.AutoMigrate(&Activity{}); err != nil {
		return fmt.Errorf("无法迁移activity表: %w", err)
	}
	fmt.Println("Activity数据库表迁移成功。")
	return nil
}
