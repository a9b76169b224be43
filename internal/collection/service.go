package collection

import (
	"errors"
	"fmt"

	"github.com/SlpAus/game-shelf-backend/internal/activity"
	"github.com/SlpAus/game-shelf-backend/internal/game"
	"github.com/SlpAus/game-shelf-backend/internal/platform/database"
	"github.com/SlpAus/game-shelf-backend/internal/stats"
	"github.com/SlpAus/game-shelf-backend/internal/user"
	"gorm.io/gorm"
)

// CreateEntryInput 定义了创建收藏条目所需的字段
type CreateEntryInput struct {
	GameID          string
	Status          Status
	Source          Source
	Rating          *int
	PlaytimeMinutes int
	Notes           string
}

// UpdateEntryInput 定义了更新收藏条目时允许变更的字段。
// nil表示该字段保持不变。
type UpdateEntryInput struct {
	Status          *Status
	Rating          *int
	PlaytimeMinutes *int
	Notes           *string
}

// CreateEntry 为用户创建一条新的收藏条目。
// 条目写入、统计重算和动态追加在同一个事务中完成，任一失败则全部回滚。
func CreateEntry(userID string, input CreateEntryInput) (*Entry, error) {
	if !input.Status.IsValid() {
		return nil, fmt.Errorf("%w: 无效的状态 %q", ErrInvalidInput, input.Status)
	}
	if !input.Source.IsValid() {
		return nil, fmt.Errorf("%w: 无效的来源 %q", ErrInvalidInput, input.Source)
	}
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}
	if input.PlaytimeMinutes < 0 {
		return nil, fmt.Errorf("%w: 游玩时长不能为负", ErrInvalidInput)
	}

	gameInfo, ok := game.GetInfoByID(input.GameID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, input.GameID)
	}

	// 首次写入即视为注册，持久化用户
	if err := user.ActivateUser(userID); err != nil {
		return nil, err
	}

	entry := Entry{
		UserID:          userID,
		GameID:          input.GameID,
		Status:          input.Status,
		Rating:          input.Rating,
		Source:          input.Source,
		PlaytimeMinutes: input.PlaytimeMinutes,
		Notes:           input.Notes,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entry).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: %s", ErrDuplicateEntry, input.GameID)
			}
			return fmt.Errorf("无法创建收藏条目: %w", err)
		}
		return recomputeAndEmitTx(tx, userID, nil, &entry, gameInfo)
	})
	if err != nil {
		return nil, err
	}

	markUserDirty(userID)
	return &entry, nil
}

// UpdateEntry 更新用户的一条收藏条目。
// 允许变更的字段: status / rating / playtime_minutes / notes。
func UpdateEntry(userID string, entryID uint, input UpdateEntryInput) (*Entry, error) {
	if input.Status != nil && !input.Status.IsValid() {
		return nil, fmt.Errorf("%w: 无效的状态 %q", ErrInvalidInput, *input.Status)
	}
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}
	if input.PlaytimeMinutes != nil && *input.PlaytimeMinutes < 0 {
		return nil, fmt.Errorf("%w: 游玩时长不能为负", ErrInvalidInput)
	}

	var entry Entry
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: id=%d", ErrEntryNotFound, entryID)
			}
			return fmt.Errorf("无法读取收藏条目: %w", err)
		}

		oldState := entryState(&entry)

		if input.Status != nil {
			entry.Status = *input.Status
		}
		if input.Rating != nil {
			rating := *input.Rating
			entry.Rating = &rating
		}
		if input.PlaytimeMinutes != nil {
			entry.PlaytimeMinutes = *input.PlaytimeMinutes
		}
		if input.Notes != nil {
			entry.Notes = *input.Notes
		}

		if err := tx.Save(&entry).Error; err != nil {
			return fmt.Errorf("无法保存收藏条目: %w", err)
		}

		gameInfo, _ := game.GetInfoByID(entry.GameID)
		return recomputeAndEmitTx(tx, userID, oldState, &entry, gameInfo)
	})
	if err != nil {
		return nil, err
	}

	markUserDirty(userID)
	return &entry, nil
}

// DeleteEntry 删除用户的一条收藏条目。
// 统计在同一事务中重算；删除从不产生动态。
func DeleteEntry(userID string, entryID uint) error {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var entry Entry
		if err := tx.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: id=%d", ErrEntryNotFound, entryID)
			}
			return fmt.Errorf("无法读取收藏条目: %w", err)
		}

		if err := tx.Delete(&entry).Error; err != nil {
			return fmt.Errorf("无法删除收藏条目: %w", err)
		}

		// 删除只重算统计，不产生动态
		return recomputeStatsTx(tx, userID)
	})
	if err != nil {
		return err
	}

	markUserDirty(userID)
	return nil
}

// ListEntries 返回用户的全部收藏条目，最近更新的在前。
func ListEntries(userID string) ([]Entry, error) {
	var entries []Entry
	err := database.DB.Where("user_id = ?", userID).
		Order("updated_at desc").Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("无法读取收藏列表: %w", err)
	}
	return entries, nil
}

// --- 事务内的派生状态维护 ---

// recomputeAndEmitTx 在条目变更的事务中完成两项派生维护：
// 整体重算统计聚合，以及按分类规则有条件地追加一条动态。
func recomputeAndEmitTx(tx *gorm.DB, userID string, oldState *activity.EntryState, entry *Entry, gameInfo game.GameInfo) error {
	if err := recomputeStatsTx(tx, userID); err != nil {
		return err
	}

	draft, ok := activity.Classify(oldState, entryState(entry))
	if !ok {
		return nil
	}
	return activity.AppendTx(tx, userID, draft, activity.GameSnapshot{
		GameID:   entry.GameID,
		Name:     gameInfo.Name,
		CoverURL: gameInfo.CoverURL,
	})
}

// recomputeStatsTx 读取用户的全部条目并整体重算统计聚合。
// 事实集在同一事务中读取，保证与触发变更的可见性一致。
func recomputeStatsTx(tx *gorm.DB, userID string) error {
	var entries []Entry
	if err := tx.Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		return fmt.Errorf("无法读取用户条目: %w", err)
	}

	facts := make([]stats.EntryFact, 0, len(entries))
	for _, e := range entries {
		var genres []string
		if info, ok := game.GetInfoByID(e.GameID); ok {
			genres = info.Genres
		}
		facts = append(facts, stats.EntryFact{
			Status: string(e.Status),
			Rating: e.Rating,
			Genres: genres,
		})
	}

	return stats.RecomputeForUserTx(tx, userID, facts)
}

// entryState 把条目转换为动态分类器的输入
func entryState(e *Entry) *activity.EntryState {
	return &activity.EntryState{
		Status: string(e.Status),
		Rating: e.Rating,
		Source: string(e.Source),
	}
}

// validateRating 校验评分范围(1-10)
func validateRating(rating *int) error {
	if rating != nil && (*rating < 1 || *rating > 10) {
		return fmt.Errorf("%w: 评分必须在1到10之间", ErrInvalidInput)
	}
	return nil
}
