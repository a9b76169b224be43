package user

import (
	"errors"
	"fmt"

	"github.com/SlpAus/game-shelf-backend/internal/platform/database"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateProvisionalUser 生成一个临时的、尚未持久化的新用户UUID。
// 这个UUID将被设置到cookie中，但此时尚未被“认证”。
func CreateProvisionalUser() (string, error) {
	newUUID, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("无法生成UUID v7: %w", err)
	}
	return newUUID.String(), nil
}

// IsValidUUID 检查一个字符串是否是合法的UUID格式。
func IsValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// IsUserActivated 检查一个给定的UUID是否已经被激活（即存在于我们的持久化系统中）。
// 优先查询Redis缓存；缓存不可用时回退到SQLite。
func IsUserActivated(uuidStr string) (bool, error) {
	if uuidStr == "" {
		return false, nil
	}

	if database.CacheAvailable() {
		exists, err := database.RDB.SIsMember(database.Ctx, KnownUsersKey, uuidStr).Result()
		if err == nil {
			return exists, nil
		}
		fmt.Printf("检查Redis用户缓存时出错，回退到SQLite: %v\n", err)
	}

	var count int64
	if err := database.DB.Model(&User{}).Where("uuid = ?", uuidStr).Count(&count).Error; err != nil {
		return false, fmt.Errorf("检查SQLite用户记录时出错: %w", err)
	}
	return count > 0, nil
}

// ActivateUser 将一个临时的UUID正式持久化到数据库和缓存中。
// 归零的统计聚合行由首次收藏变更在同一事务中一并建立。
func ActivateUser(uuidStr string) error {
	// 首先检查该用户是否已经被激活，避免重复写入
	activated, err := IsUserActivated(uuidStr)
	if err != nil {
		return err
	}
	if activated {
		return nil // 用户已存在，无需操作
	}

	newUser := User{UUID: uuidStr}
	if err := database.DB.Create(&newUser).Error; err != nil {
		// 如果是因为记录已存在而出错，这不是一个真正的错误
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("无法在SQLite中创建新用户: %w", err)
		}
	}

	// 缓存是非权威的：写入失败只记录，由预热/健康重建修复
	if database.CacheAvailable() {
		if err := database.RDB.SAdd(database.Ctx, KnownUsersKey, uuidStr).Err(); err != nil {
			fmt.Printf("警告: 无法将新用户 %s 添加到Redis缓存: %v\n", uuidStr, err)
		}
	}
	return nil
}
