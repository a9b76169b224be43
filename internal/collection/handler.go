package collection

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/SlpAus/game-shelf-backend/internal/user"
	"github.com/SlpAus/game-shelf-backend/pkg/token"
	"github.com/gin-gonic/gin"
)

// CreateEntryRequestBody 定义了创建收藏条目的请求体JSON结构
type CreateEntryRequestBody struct {
	GameID          string `json:"game_id" binding:"required"`
	Status          Status `json:"status" binding:"required"`
	Source          Source `json:"source"`
	Rating          *int   `json:"rating"`
	PlaytimeMinutes int    `json:"playtime_minutes"`
	Notes           string `json:"notes"`
}

// UpdateEntryRequestBody 定义了更新收藏条目的请求体JSON结构。
// 省略的字段保持不变。
type UpdateEntryRequestBody struct {
	Status          *Status `json:"status"`
	Rating          *int    `json:"rating"`
	PlaytimeMinutes *int    `json:"playtime_minutes"`
	Notes           *string `json:"notes"`
}

// ImportRequestBody 定义了批量导入的请求体JSON结构
type ImportRequestBody struct {
	Credential token.ImportCredential `json:"credential" binding:"required"`
	Signature  string                 `json:"signature" binding:"required"`
	Items      []ImportItem           `json:"items" binding:"required"`
}

// CreateEntryHandler 处理添加游戏到收藏的请求
func CreateEntryHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var body CreateEntryRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误: " + err.Error()})
		return
	}
	if body.Source == "" {
		body.Source = SourceManual
	}

	entry, err := CreateEntry(userID, CreateEntryInput{
		GameID:          body.GameID,
		Status:          body.Status,
		Source:          body.Source,
		Rating:          body.Rating,
		PlaytimeMinutes: body.PlaytimeMinutes,
		Notes:           body.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// ListEntriesHandler 返回当前用户的全部收藏
func ListEntriesHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	entries, err := ListEntries(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// UpdateEntryHandler 处理更新收藏条目的请求
func UpdateEntryHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	entryID, ok := parseEntryID(c)
	if !ok {
		return
	}

	var body UpdateEntryRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误: " + err.Error()})
		return
	}

	entry, err := UpdateEntry(userID, entryID, UpdateEntryInput{
		Status:          body.Status,
		Rating:          body.Rating,
		PlaytimeMinutes: body.PlaytimeMinutes,
		Notes:           body.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteEntryHandler 处理删除收藏条目的请求
func DeleteEntryHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	entryID, ok := parseEntryID(c)
	if !ok {
		return
	}

	if err := DeleteEntry(userID, entryID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

// GetImportTokenHandler 为当前用户签发第三方库导入凭证
func GetImportTokenHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	source := Source(c.Query("source"))
	cred, signature, err := IssueImportCredential(userID, source)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"credential": cred,
		"signature":  signature,
	})
}

// ImportHandler 处理第三方平台的批量库导入
func ImportHandler(c *gin.Context) {
	var body ImportRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误: " + err.Error()})
		return
	}

	result, err := ImportLibrary(body.Credential, body.Signature, body.Items)
	if err != nil {
		if errors.Is(err, ErrInvalidCredential) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "导入失败: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// --- 辅助函数 ---

// requireUser 从Gin上下文中取出合法的用户UUID
func requireUser(c *gin.Context) (string, bool) {
	userID := c.GetString(user.UserIDKey)
	if !user.IsValidUUID(userID) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "缺少有效的用户标识"})
		return "", false
	}
	return userID, true
}

// parseEntryID 解析路径参数中的条目ID
func parseEntryID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的条目ID"})
		return 0, false
	}
	return uint(id), true
}

// respondServiceError 把服务层错误映射为HTTP状态码
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrDuplicateEntry):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, ErrEntryNotFound), errors.Is(err, ErrGameNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "处理收藏变更失败: " + err.Error()})
	}
}
