package game

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GameResponse 定义了游戏目录API的响应结构
type GameResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	CoverURL string   `json:"coverUrl"`
	Genres   []string `json:"genres"`
}

// GetCatalog 返回完整的游戏目录
func GetCatalog(c *gin.Context) {
	ids, infos := ListAll()
	resp := make([]GameResponse, 0, len(ids))
	for i, id := range ids {
		resp = append(resp, GameResponse{
			ID:       id,
			Name:     infos[i].Name,
			CoverURL: infos[i].CoverURL,
			Genres:   infos[i].Genres,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// GetGameByID 按目录ID返回单个游戏
func GetGameByID(c *gin.Context) {
	id := c.Param("id")
	info, ok := GetInfoByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "找不到游戏: " + id})
		return
	}
	c.JSON(http.StatusOK, GameResponse{
		ID:       id,
		Name:     info.Name,
		CoverURL: info.CoverURL,
		Genres:   info.Genres,
	})
}
