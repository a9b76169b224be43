package startup

import (
	"fmt"

	"github.com/SlpAus/game-shelf-backend/internal/activity"
	"github.com/SlpAus/game-shelf-backend/internal/badge"
	"github.com/SlpAus/game-shelf-backend/internal/collection"
	"github.com/SlpAus/game-shelf-backend/internal/game"
	"github.com/SlpAus/game-shelf-backend/internal/platform/database"
	"github.com/SlpAus/game-shelf-backend/internal/platform/metadata"
	"github.com/SlpAus/game-shelf-backend/internal/stats"
	"github.com/SlpAus/game-shelf-backend/internal/user"
)

// InitializeApplication 是应用首次启动时执行的总入口
func InitializeApplication() error {
	fmt.Println("开始应用首次初始化...")

	if err := metadata.PrimeDB(); err != nil {
		return err
	}
	if err := user.PrimeCachedDB(); err != nil {
		return err
	}
	if err := badge.PrimeDB(); err != nil {
		return err
	}
	if err := game.PrimeCachedDB(); err != nil {
		return err
	}
	if err := stats.PrimeCachedDB(); err != nil {
		return err
	}
	if err := activity.PrimeDB(); err != nil {
		return err
	}
	if err := collection.PrimeDB(); err != nil {
		return err
	}

	fmt.Println("应用初始化完成！")
	return nil
}

// RebuildCache 是一个专门用于在运行时热重建Redis缓存的函数。
// SQLite是权威数据源，重建只是把派生缓存恢复到与它一致。
func RebuildCache() error {
	fmt.Println("开始缓存热重建...")

	if err := user.WarmupCache(); err != nil {
		return err
	}
	if err := stats.WarmupCache(); err != nil {
		return err
	}
	if err := activity.InvalidateAllFeeds(); err != nil {
		return err
	}
	// 全量预热后，增量脏集合中的内容已经过时
	if database.RDB != nil {
		if err := database.RDB.Del(database.Ctx, collection.DirtyUsersKey).Err(); err != nil {
			return fmt.Errorf("无法清空脏用户集合: %w", err)
		}
	}

	fmt.Println("缓存热重建完成。")
	return nil
}
