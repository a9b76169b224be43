package collection

import (
	"fmt"

	"github.com/SlpAus/game-shelf-backend/internal/platform/database"
)

// PrimeDB 负责初始化collection模块的数据库部分
func PrimeDB() error {
	if err := database.DB.AutoMigrate(&Entry{}); err != nil {
		return fmt.Errorf("无法迁移collection表: %w", err)
	}
	fmt.Println("Collection数据库表迁移成功。")
	return nil
}
