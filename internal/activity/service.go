package activity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SlpAus/game-shelf-backend/internal/platform/database"
	"gorm.io/gorm"
)

// 动态缓存参数，由 ConfigureModule 按配置覆盖
var (
	feedCacheLength = 50
	feedCacheTTL    = time.Hour
)

// GameSnapshot 是写入动态时从目录反规范化的游戏信息。
type GameSnapshot struct {
	GameID   string
	Name     string
	CoverURL string
}

// AppendTx 在事务中追加一条动态记录。
// 它必须与触发它的收藏条目变更处于同一个事务中。
func AppendTx(tx *gorm.DB, userID string, draft Draft, game GameSnapshot) error {
	record := Activity{
		UserID:    userID,
		GameID:    game.GameID,
		Type:      draft.Type,
		GameName:  game.Name,
		GameCover: game.CoverURL,
		Source:    draft.Source,
		OldValue:  draft.OldValue,
		NewValue:  draft.NewValue,
	}
	if err := tx.Create(&record).Error; err != nil {
		return fmt.Errorf("无法写入动态记录: %w", err)
	}
	return nil
}

// GetFeedForUser 返回用户最近的动态，按时间倒序。
// 请求落在缓存窗口内时走Redis的读穿缓存，否则直接查询SQLite。
func GetFeedForUser(userID string, limit, offset int) ([]FeedItem, error) {
	if limit <= 0 {
		limit = 20
	}

	if database.CacheAvailable() && offset+limit <= feedCacheLength {
		items, err := feedFromCache(userID, limit, offset)
		if err == nil {
			return items, nil
		}
		fmt.Printf("读取动态缓存失败，回退到SQLite: %v\n", err)
	}

	return feedFromDB(userID, limit, offset)
}

// feedFromCache 从Redis读取动态窗口，未命中时从SQLite装载整个窗口。
func feedFromCache(userID string, limit, offset int) ([]FeedItem, error) {
	key := feedKeyPrefix + userID

	exists, err := database.RDB.Exists(database.Ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		if err := primeUserFeed(userID); err != nil {
			return nil, err
		}
	}

	rawItems, err := database.RDB.LRange(database.Ctx, key, int64(offset), int64(offset+limit-1)).Result()
	if err != nil {
		return nil, err
	}

	items := make([]FeedItem, 0, len(rawItems))
	for _, raw := range rawItems {
		var item FeedItem
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// primeUserFeed 从SQLite装载用户最近的动态窗口到Redis。
// 列表头部是最新的动态。Redis不保留空List，
// 因此没有任何动态的用户每次读取都会回源，这是可接受的。
func primeUserFeed(userID string) error {
	var records []Activity
	err := database.DB.Where("user_id = ?", userID).
		Order("id desc").Limit(feedCacheLength).Find(&records).Error
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	key := feedKeyPrefix + userID
	pipe := database.RDB.Pipeline()
	pipe.Del(database.Ctx, key)
	for _, record := range records {
		itemJSON, jsonErr := json.Marshal(feedItemOf(record))
		if jsonErr != nil {
			return jsonErr
		}
		pipe.RPush(database.Ctx, key, itemJSON)
	}
	pipe.Expire(database.Ctx, key, feedCacheTTL)
	_, err = pipe.Exec(database.Ctx)
	return err
}

// feedFromDB 直接从SQLite读取动态窗口。
func feedFromDB(userID string, limit, offset int) ([]FeedItem, error) {
	var records []Activity
	err := database.DB.Where("user_id = ?", userID).
		Order("id desc").Limit(limit).Offset(offset).Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("无法从SQLite读取动态: %w", err)
	}

	items := make([]FeedItem, 0, len(records))
	for _, record := range records {
		items = append(items, feedItemOf(record))
	}
	return items, nil
}

// InvalidateUserFeed 删除用户的动态缓存，下一次读取时重新装载。
func InvalidateUserFeed(userID string) error {
	if !database.CacheAvailable() {
		return nil
	}
	return database.RDB.Del(database.Ctx, feedKeyPrefix+userID).Err()
}

// InvalidateAllFeeds 删除所有用户的动态缓存。
// 在缓存热重建时调用。
func InvalidateAllFeeds() error {
	if database.RDB == nil {
		return nil
	}

	var cursor uint64
	for {
		keys, nextCursor, err := database.RDB.Scan(database.Ctx, cursor, feedKeyPrefix+"*", 100).Result()
		if err != nil {
			return fmt.Errorf("扫描动态缓存键失败: %w", err)
		}
		if len(keys) > 0 {
			if err := database.RDB.Del(database.Ctx, keys...).Err(); err != nil {
				return fmt.Errorf("删除动态缓存键失败: %w", err)
			}
		}
		cursor = nextCursor
		if cursor == 0 {
			return nil
		}
	}
}
