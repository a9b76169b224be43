package collection

import (
	"fmt"
	"time"

	"github.com/SlpAus/game-shelf-backend/internal/activity"
	"github.com/SlpAus/game-shelf-backend/internal/platform/database"
	"github.com/SlpAus/game-shelf-backend/internal/stats"
	"github.com/SlpAus/game-shelf-backend/pkg/lifecycle"
)

// DirtyUsersKey 是一个 Redis Set 的键，存储自上次缓存刷新以来
// 收藏发生过变更的用户UUID。SQLite事务是权威的，
// Redis缓存由后台刷新器按这个集合增量修复。
const DirtyUsersKey = "user:stats:dirty"

// refreshBatchSize 是刷新器单轮从脏集合取出的用户数上限
const refreshBatchSize = 64

// markUserDirty 在变更事务提交后把用户标记为脏。
// 缓存是非权威的：标记失败只记录日志，等待预热/健康重建兜底。
func markUserDirty(userID string) {
	if !database.CacheAvailable() {
		return
	}
	if err := database.RDB.SAdd(database.Ctx, DirtyUsersKey, userID).Err(); err != nil {
		fmt.Printf("警告: 无法标记脏用户 %s: %v\n", userID, err)
	}
}

// StartCacheRefresher 启动后台缓存刷新循环。
// 每个周期把脏用户的统计快照从SQLite重新镜像到Redis，
// 并作废其动态缓存，下一次读取时重新装载。
func StartCacheRefresher(handle *lifecycle.Handle, interval time.Duration) {
	defer handle.Close()
	fmt.Println("缓存刷新器 (Cache Refresher) 已启动。")

	for {
		if err := handle.Sleep(interval); err != nil {
			// 收到停机信号，尽力完成最后一轮刷新后退出
			FlushDirtyUsers()
			fmt.Println("缓存刷新器已停止。")
			return
		}
		refreshOnce()
	}
}

// refreshOnce 处理一批脏用户。
func refreshOnce() {
	if !database.CacheAvailable() {
		return
	}

	userIDs, err := database.RDB.SPopN(database.Ctx, DirtyUsersKey, refreshBatchSize).Result()
	if err != nil {
		fmt.Printf("警告: 无法读取脏用户集合: %v\n", err)
		return
	}

	for _, userID := range userIDs {
		if err := stats.WriteUserCacheFromDB(userID); err != nil {
			fmt.Printf("警告: 刷新用户 %s 的统计缓存失败: %v\n", userID, err)
			continue
		}
		if err := activity.InvalidateUserFeed(userID); err != nil {
			fmt.Printf("警告: 作废用户 %s 的动态缓存失败: %v\n", userID, err)
		}
	}
}

// FlushDirtyUsers 同步清空整个脏集合。
// 在优雅停机和缓存热重建后调用。
func FlushDirtyUsers() {
	for {
		if !database.CacheAvailable() {
			return
		}
		count, err := database.RDB.SCard(database.Ctx, DirtyUsersKey).Result()
		if err != nil || count == 0 {
			return
		}
		refreshOnce()
	}
}
