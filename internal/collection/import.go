package collection

import (
	"errors"
	"fmt"
	"time"

	"github.com/SlpAus/game-shelf-backend/internal/platform/database"
	"github.com/SlpAus/game-shelf-backend/internal/user"
	"github.com/SlpAus/game-shelf-backend/pkg/token"
	"gorm.io/gorm"
)

// importCredentialTTL 是导入凭证的有效期。
// 第三方库同步任务必须在这个窗口内带着凭证回调。
const importCredentialTTL = 15 * time.Minute

// ErrInvalidCredential 表示导入凭证缺失、被篡改或已过期
var ErrInvalidCredential = errors.New("导入凭证无效或已过期")

// ImportItem 是批量导入中的单个游戏条目
type ImportItem struct {
	GameID          string `json:"game_id" binding:"required"`
	Status          Status `json:"status" binding:"required"`
	Rating          *int   `json:"rating"`
	PlaytimeMinutes int    `json:"playtime_minutes"`
}

// ImportResult 汇总一次批量导入的处理结果
type ImportResult struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

// IssueImportCredential 为当前用户签发一个绑定第三方平台的导入凭证。
// 凭证由HMAC签名保护，同步任务原样带回。
func IssueImportCredential(userID string, source Source) (token.ImportCredential, string, error) {
	if !source.IsExternal() {
		return token.ImportCredential{}, "", fmt.Errorf("%w: 导入来源必须是第三方平台", ErrInvalidInput)
	}

	cred := token.ImportCredential{
		UserID:   userID,
		Source:   string(source),
		IssuedAt: time.Now().Unix(),
	}
	signature, err := token.SignImportCredential(cred)
	if err != nil {
		return token.ImportCredential{}, "", fmt.Errorf("无法签发导入凭证: %w", err)
	}
	return cred, signature, nil
}

// ImportLibrary 按导入凭证批量同步第三方平台的游戏库。
// 每个条目都走与手动操作完全相同的变更路径：
// 不存在则创建，已存在则更新，派生状态随每次变更原子维护。
func ImportLibrary(cred token.ImportCredential, signature string, items []ImportItem) (ImportResult, error) {
	// 1. 验证凭证签名与有效期
	if !token.ValidateImportCredential(cred, signature) {
		return ImportResult{}, ErrInvalidCredential
	}
	if time.Since(time.Unix(cred.IssuedAt, 0)) > importCredentialTTL {
		return ImportResult{}, ErrInvalidCredential
	}
	source := Source(cred.Source)
	if !source.IsExternal() || !user.IsValidUUID(cred.UserID) {
		return ImportResult{}, ErrInvalidCredential
	}

	// 2. 逐条目处理；单个条目失败不中断整批，但会被记录
	var result ImportResult
	for _, item := range items {
		created, err := importOne(cred.UserID, source, item)
		if err != nil {
			if errors.Is(err, ErrGameNotFound) {
				result.Skipped++
				continue
			}
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", item.GameID, err))
			continue
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}
	return result, nil
}

// importOne 同步单个条目，返回是否新建。
func importOne(userID string, source Source, item ImportItem) (bool, error) {
	_, err := CreateEntry(userID, CreateEntryInput{
		GameID:          item.GameID,
		Status:          item.Status,
		Source:          source,
		Rating:          item.Rating,
		PlaytimeMinutes: item.PlaytimeMinutes,
	})
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, ErrDuplicateEntry) {
		return false, err
	}

	// 条目已存在：按(用户, 游戏)对找到它并走更新路径
	entry, err := findEntryByGame(userID, item.GameID)
	if err != nil {
		return false, err
	}
	status := item.Status
	_, err = UpdateEntry(userID, entry.ID, UpdateEntryInput{
		Status:          &status,
		Rating:          item.Rating,
		PlaytimeMinutes: &item.PlaytimeMinutes,
	})
	return false, err
}

// findEntryByGame 按(用户, 游戏)对查找条目
func findEntryByGame(userID, gameID string) (*Entry, error) {
	var entry Entry
	err := database.DB.Where("user_id = ? AND game_id = ?", userID, gameID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: game=%s", ErrEntryNotFound, gameID)
		}
		return nil, fmt.Errorf("无法读取收藏条目: %w", err)
	}
	return &entry, nil
}
