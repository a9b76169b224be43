package database

import (
	"context"
	"fmt"

	"github.com/SlpAus/game-shelf-backend/internal/platform/config"
	"github.com/redis/go-redis/v9"
)

// RDB 是一个全局的Redis客户端实例，供项目其他部分使用。
// 当服务以纯SQLite模式运行（如测试环境）时，它保持为nil。
var RDB *redis.Client

// Ctx 是一个全局的上下文，用于Redis操作
var Ctx = context.Background()

// InitRedis 初始化与Redis数据库的连接
func InitRedis(cfg config.RedisConfig) {
	// 使用从配置文件加载的参数创建客户端
	RDB = redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// 使用Ping命令来测试连接是否成功
	_, err := RDB.Ping(Ctx).Result()
	if err != nil {
		// 如果连接失败，程序将panic并退出
		panic("无法连接到Redis: " + err.Error())
	}

	fmt.Println("Redis 连接成功！")
}

// CacheAvailable 返回Redis缓存当前是否可用。
// 它同时覆盖了“未配置Redis”和“Redis暂时不健康”两种情况。
func CacheAvailable() bool {
	return RDB != nil && IsRedisHealthy()
}
