package api

import (
	"github.com/SlpAus/game-shelf-backend/internal/activity"
	"github.com/SlpAus/game-shelf-backend/internal/badge"
	"github.com/SlpAus/game-shelf-backend/internal/collection"
	"github.com/SlpAus/game-shelf-backend/internal/game"
	"github.com/SlpAus/game-shelf-backend/internal/stats"
	"github.com/SlpAus/game-shelf-backend/internal/user"
	"github.com/gin-gonic/gin"
)

// SetupRoutes 注册项目的所有API路由
func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		// 游戏目录相关的路由组 /api/games
		gameRoutes := api.Group("/games")
		{
			gameRoutes.GET("", game.GetCatalog)
			gameRoutes.GET("/:id", game.GetGameByID)
		}

		// 徽章等级表
		api.GET("/badges", badge.GetTiers)

		// 收藏相关的路由组 /api/collection
		collectionRoutes := api.Group("/collection")
		{
			collectionRoutes.POST("", user.EnsureUserCookieMiddleware(), collection.CreateEntryHandler)
			collectionRoutes.GET("", user.LoadUserMiddleware(), collection.ListEntriesHandler)
			collectionRoutes.PUT("/:id", user.LoadUserMiddleware(), collection.UpdateEntryHandler)
			collectionRoutes.DELETE("/:id", user.LoadUserMiddleware(), collection.DeleteEntryHandler)

			// 第三方库导入：凭证由已登录用户签发，导入回调自带凭证
			collectionRoutes.GET("/import/token", user.LoadUserMiddleware(), collection.GetImportTokenHandler)
			collectionRoutes.POST("/import", collection.ImportHandler)
		}

		// 统计与动态
		api.GET("/stats/me", user.LoadUserMiddleware(), stats.GetMyStats)
		api.GET("/activity/me", user.LoadUserMiddleware(), activity.GetMyFeed)
	}
}
