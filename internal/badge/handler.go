package badge

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TierResponse 定义了徽章等级API的响应结构
type TierResponse struct {
	Level         int    `json:"level"`
	RequiredGames int    `json:"requiredGames"`
	Name          string `json:"name"`
	Icon          string `json:"icon"`
}

// GetTiers 返回完整的徽章等级表
func GetTiers(c *gin.Context) {
	tiers := AllTiers()
	resp := make([]TierResponse, 0, len(tiers))
	for _, t := range tiers {
		resp = append(resp, TierResponse{
			Level:         t.Level,
			RequiredGames: t.RequiredGames,
			Name:          t.Name,
			Icon:          t.Icon,
		})
	}
	c.JSON(http.StatusOK, resp)
}
