package activity

import (
	"net/http"
	"strconv"

	"github.com/SlpAus/game-shelf-backend/internal/user"
	"github.com/gin-gonic/gin"
)

const maxFeedPageSize = 50

// GetMyFeed 返回当前用户最近的动态，按时间倒序，支持limit/offset分页
func GetMyFeed(c *gin.Context) {
	userID := c.GetString(user.UserIDKey)
	if !user.IsValidUUID(userID) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "缺少有效的用户标识"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	if limit > maxFeedPageSize {
		limit = maxFeedPageSize
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	items, err := GetFeedForUser(userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取动态失败: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}
