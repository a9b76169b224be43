package stats

import (
	"net/http"

	"github.com/SlpAus/game-shelf-backend/internal/user"
	"github.com/gin-gonic/gin"
)

// GetMyStats 返回当前用户的统计聚合快照
func GetMyStats(c *gin.Context) {
	userID := c.GetString(user.UserIDKey)
	if !user.IsValidUUID(userID) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "缺少有效的用户标识"})
		return
	}

	snapshot, err := GetSnapshotForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取统计数据失败: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
