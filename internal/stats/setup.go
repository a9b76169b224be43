package stats

import (
	"encoding/json"
	"fmt"

	"github.com/SlpAus/game-shelf-backend/internal/platform/database"
)

// migrateDB 负责自动迁移数据库表结构
func migrateDB() error {
	if err := database.DB.AutoMigrate(&UserStats{}); err != nil {
		return fmt.Errorf("无法迁移user_stats表: %w", err)
	}
	fmt.Println("UserStats数据库表迁移成功。")
	return nil
}

// WarmupCache 从SQLite加载所有用户的统计聚合，并预热到Redis的Hash中
func WarmupCache() error {
	if database.RDB == nil {
		return nil
	}

	var aggregates []UserStats
	if err := database.DB.Find(&aggregates).Error; err != nil {
		return fmt.Errorf("无法从SQLite读取统计聚合: %w", err)
	}

	pipe := database.RDB.Pipeline()
	// 先清空旧的缓存，确保与SQLite一致
	pipe.Del(database.Ctx, StatsKey)
	for _, agg := range aggregates {
		snapshotJSON, err := json.Marshal(snapshotOf(agg))
		if err != nil {
			return fmt.Errorf("无法序列化用户 %s 的统计快照: %w", agg.UserID, err)
		}
		pipe.HSet(database.Ctx, StatsKey, agg.UserID, snapshotJSON)
	}

	if _, err := pipe.Exec(database.Ctx); err != nil {
		return fmt.Errorf("预热统计聚合到Redis失败: %w", err)
	}

	fmt.Printf("成功预热 %d 个用户的统计聚合到Redis。\n", len(aggregates))
	return nil
}

// PrimeCachedDB 是stats模块的初始化总入口
func PrimeCachedDB() error {
	if err := migrateDB(); err != nil {
		return err
	}
	if err := WarmupCache(); err != nil {
		return err
	}
	return nil
}
