package stats

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SlpAus/game-shelf-backend/internal/platform/database"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// aggregateColumns 是upsert时整体覆盖的列集合
var aggregateColumns = []string{
	"total_games", "completed_games", "wishlist_games", "playing_games", "dropped_games",
	"average_rating", "total_ratings", "favorite_genre", "badge_tier", "updated_at",
}

// RecomputeForUserTx 在事务中对用户的统计聚合做整体重算并覆盖写入。
// 它必须与触发它的收藏条目变更处于同一个事务中：
// 校验失败时返回错误，调用方的整个事务随之回滚。
func RecomputeForUserTx(tx *gorm.DB, userID string, facts []EntryFact) error {
	agg := BuildAggregate(userID, facts)

	if err := ValidateAggregate(agg); err != nil {
		return err
	}

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns(aggregateColumns),
	}).Create(&agg).Error
	if err != nil {
		return fmt.Errorf("无法写入用户 %s 的统计聚合: %w", userID, err)
	}
	return nil
}

// GetSnapshotForUser 返回用户统计聚合的只读快照。
// 优先读Redis缓存；未命中或缓存不可用时回退到SQLite。
// 对尚未激活的用户返回归零的快照。
func GetSnapshotForUser(userID string) (AggregateSnapshot, error) {
	if database.CacheAvailable() {
		cached, err := database.RDB.HGet(database.Ctx, StatsKey, userID).Result()
		if err == nil {
			var snapshot AggregateSnapshot
			if jsonErr := json.Unmarshal([]byte(cached), &snapshot); jsonErr == nil {
				return snapshot, nil
			}
		}
		// 缓存未命中或损坏，落到SQLite
	}

	var agg UserStats
	err := database.DB.Where("user_id = ?", userID).First(&agg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AggregateSnapshot{}, nil
		}
		return AggregateSnapshot{}, fmt.Errorf("无法从SQLite读取统计聚合: %w", err)
	}
	return snapshotOf(agg), nil
}

// WriteUserCacheFromDB 从SQLite读取用户聚合并覆盖写入Redis缓存。
// 由缓存刷新器和启动预热调用。
func WriteUserCacheFromDB(userID string) error {
	if !database.CacheAvailable() {
		return nil
	}

	var agg UserStats
	err := database.DB.Where("user_id = ?", userID).First(&agg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 聚合行已随用户删除，同时移除缓存
			return database.RDB.HDel(database.Ctx, StatsKey, userID).Err()
		}
		return fmt.Errorf("无法读取用户 %s 的统计聚合: %w", userID, err)
	}

	snapshotJSON, err := json.Marshal(snapshotOf(agg))
	if err != nil {
		return fmt.Errorf("无法序列化用户 %s 的统计快照: %w", userID, err)
	}
	return database.RDB.HSet(database.Ctx, StatsKey, userID, snapshotJSON).Err()
}
