package badge

import (
	"fmt"

	"github.com/SlpAus/game-shelf-backend/internal/platform/database"
	"gorm.io/gorm/clause"
)

// PrimeDB 负责初始化badge模块的数据库部分：迁移表结构并播种静态等级数据。
func PrimeDB() error {
	if err := database.DB.AutoMigrate(&Tier{}); err != nil {
		return fmt.Errorf("无法迁移badge表: %w", err)
	}

	// 以Level为冲突键做upsert，保证重复启动不会产生重复行，
	// 同时允许通过升级程序修改显示元数据。
	for _, t := range defaultTiers {
		tier := t
		err := database.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "level"}},
			DoUpdates: clause.AssignmentColumns([]string{"required_games", "name", "icon"}),
		}).Create(&tier).Error
		if err != nil {
			return fmt.Errorf("无法播种badge等级 %d: %w", t.Level, err)
		}
	}

	fmt.Printf("Badge数据库表迁移成功，已播种 %d 个等级。\n", len(defaultTiers))
	return nil
}
