package game

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/SlpAus/game-shelf-backend/internal/platform/database"
	"github.com/SlpAus/game-shelf-backend/internal/platform/metadata"
	"gorm.io/gorm/clause"
)

// seedFilePath 是游戏目录种子文件的相对路径
const seedFilePath = "assets/data/games.json"

// catalogSeedFile 定义了种子文件的JSON结构
type catalogSeedFile struct {
	Version string `json:"version"`
	Games   []struct {
		ID       string   `json:"id"`
		Name     string   `json:"name"`
		CoverURL string   `json:"coverUrl"`
		Genres   []string `json:"genres"`
	} `json:"games"`
}

// PrimeCachedDB 负责初始化game模块的数据库和内存仓库
func PrimeCachedDB() error {
	// 1. 迁移数据库表结构
	if err := migrateDB(); err != nil {
		return err
	}
	// 2. 如果种子文件有更新，重新播种目录表
	if err := seedCatalog(); err != nil {
		return err
	}
	// 3. 从数据库加载静态数据到内存仓库
	if err := InitializeRepository(); err != nil {
		return err
	}
	return nil
}

// migrateDB 负责自动迁移数据库表结构
func migrateDB() error {
	if err := database.DB.AutoMigrate(&Game{}); err != nil {
		return fmt.Errorf("无法迁移game表: %w", err)
	}
	fmt.Println("Game数据库表迁移成功。")
	return nil
}

// seedCatalog 从种子文件导入游戏目录。
// 通过metadata表中记录的版本号判断是否需要重新导入，保证重复启动是幂等的。
func seedCatalog() error {
	raw, err := os.ReadFile(seedFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			// 没有种子文件时沿用数据库中已有的目录
			fmt.Println("未找到游戏目录种子文件，跳过播种。")
			return nil
		}
		return fmt.Errorf("无法读取游戏目录种子文件: %w", err)
	}

	var seed catalogSeedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("无法解析游戏目录种子文件: %w", err)
	}

	currentVersion, err := metadata.GetCatalogSeedVersion(database.DB)
	if err != nil {
		return fmt.Errorf("无法读取目录种子版本: %w", err)
	}
	if currentVersion == seed.Version {
		fmt.Printf("游戏目录种子版本 %s 已导入，跳过播种。\n", seed.Version)
		return nil
	}

	for _, g := range seed.Games {
		entry := Game{
			GameID:   g.ID,
			Name:     g.Name,
			CoverURL: g.CoverURL,
			Genres:   g.Genres,
		}
		err := database.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "game_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "cover_url", "genres"}),
		}).Create(&entry).Error
		if err != nil {
			return fmt.Errorf("无法播种游戏 %s: %w", g.ID, err)
		}
	}

	if err := metadata.SetCatalogSeedVersion(database.DB, seed.Version); err != nil {
		return fmt.Errorf("无法记录目录种子版本: %w", err)
	}

	fmt.Printf("成功播种 %d 个游戏 (种子版本 %s)。\n", len(seed.Games), seed.Version)
	return nil
}
