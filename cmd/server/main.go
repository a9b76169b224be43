package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SlpAus/game-shelf-backend/api"
	"github.com/SlpAus/game-shelf-backend/internal/activity"
	"github.com/SlpAus/game-shelf-backend/internal/collection"
	"github.com/SlpAus/game-shelf-backend/internal/platform/config"
	"github.com/SlpAus/game-shelf-backend/internal/platform/database"
	"github.com/SlpAus/game-shelf-backend/internal/platform/health"
	"github.com/SlpAus/game-shelf-backend/internal/platform/shutdown"
	"github.com/SlpAus/game-shelf-backend/internal/platform/startup"
	"github.com/SlpAus/game-shelf-backend/pkg/lifecycle"
	"github.com/SlpAus/game-shelf-backend/pkg/token"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// 1. 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("无法加载配置: %v", err))
	}

	// 2. 初始化基础设施
	token.GenerateSecretKey()
	if err := database.InitDB(cfg.Database.Sqlite); err != nil {
		panic(fmt.Sprintf("数据库初始化失败: %v", err))
	}
	database.InitRedis(cfg.Database.Redis)

	// 3. 阻塞式获取初始Run ID
	health.InitializeRunID()

	// 4. 按模块配置与首次初始化
	activity.ConfigureModule(cfg.Cache)
	if err := startup.InitializeApplication(); err != nil {
		panic(fmt.Sprintf("应用初始化失败，无法启动: %v", err))
	}

	// 5. 阻塞式执行一次启动后健康检查
	fmt.Println("正在执行启动后健康检查...")
	health.PerformCheck()

	// 6. 创建生命周期管理器并启动后台服务
	gracefulManager := lifecycle.NewManager()
	forcefulManager := lifecycle.NewManager()

	refresherHandle, err := gracefulManager.NewServiceHandle("cache-refresher")
	if err != nil {
		panic(err)
	}
	go collection.StartCacheRefresher(refresherHandle, time.Duration(cfg.Cache.RefreshIntervalSeconds)*time.Second)

	healthHandle, err := gracefulManager.NewServiceHandle("redis-health-checker")
	if err != nil {
		panic(err)
	}
	go health.StartRedisHealthCheck(healthHandle)

	// 7. 组装HTTP服务器
	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.Cors.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.SetupRoutes(r)

	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	go func() {
		fmt.Printf("服务器已准备就绪，开始监听 %s\n", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic("无法启动服务器: " + err.Error())
		}
	}()

	// 8. 阻塞等待停机信号
	coordinator := shutdown.NewCoordinator(gracefulManager, forcefulManager)
	coordinator.ListenForSignalsAndShutdown(server)
}
