package game

import (
	"fmt"

	"github.com/SlpAus/game-shelf-backend/internal/platform/database"
)

// GameInfo 持有游戏的静态数据，在程序启动时加载到内存中
type GameInfo struct {
	Name     string
	CoverURL string
	Genres   []string
}

// repository 是game模块的中央数据仓库。
// 目录数据在启动后只读，因此不需要额外的并发控制。
type repository struct {
	idToIndex   map[string]int
	indexToInfo []GameInfo
	indexToID   []string
}

// globalRepository 是我们仓库的私有单例实例
var globalRepository *repository

// InitializeRepository 从SQLite加载游戏目录数据，初始化内存仓库。
// 这个函数应该在应用启动时且仅调用一次。
func InitializeRepository() error {
	var gamesFromDB []Game
	if err := database.DB.Order("id asc").Find(&gamesFromDB).Error; err != nil {
		return fmt.Errorf("无法从SQLite加载游戏目录数据: %w", err)
	}

	size := len(gamesFromDB)
	globalRepository = &repository{
		idToIndex:   make(map[string]int, size),
		indexToInfo: make([]GameInfo, size),
		indexToID:   make([]string, size),
	}

	for i, g := range gamesFromDB {
		globalRepository.idToIndex[g.GameID] = i
		globalRepository.indexToID[i] = g.GameID
		globalRepository.indexToInfo[i] = GameInfo{
			Name:     g.Name,
			CoverURL: g.CoverURL,
			Genres:   g.Genres,
		}
	}

	fmt.Printf("游戏目录仓库 (Repository) 初始化成功，加载了 %d 个游戏。\n", size)
	return nil
}

// GetInfoByID 按目录ID返回游戏的静态信息。
func GetInfoByID(gameID string) (GameInfo, bool) {
	index, ok := globalRepository.idToIndex[gameID]
	if !ok {
		return GameInfo{}, false
	}
	return globalRepository.indexToInfo[index], true
}

// GetGameCount 返回目录中的游戏总数。
func GetGameCount() int {
	return len(globalRepository.indexToID)
}

// ListAll 按目录顺序返回所有游戏的(ID, 信息)对。
func ListAll() ([]string, []GameInfo) {
	return globalRepository.indexToID, globalRepository.indexToInfo
}
