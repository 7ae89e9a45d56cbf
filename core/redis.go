package core

import (
	"context"
	"time"

	"fkemo/global"

	"github.com/avast/retry-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// InitRedis 初始化Redis，连接失败时返回nil，令牌黑名单功能降级
func InitRedis() *redis.Client {
	// 获取Redis配置
	redisConf := global.Config.Redis

	// 创建Redis客户端配置
	opts := &redis.Options{
		Addr:     redisConf.Addr(),
		Password: redisConf.Password,
		DB:       redisConf.DB,
	}
	// 创建Redis客户端
	rdb := redis.NewClient(opts)
	// 测试连接，带重试
	err := retry.Do(
		func() error {
			_, err := rdb.Ping(context.Background()).Result()
			return err
		},
		retry.Attempts(3),
		retry.Delay(time.Second),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		global.Log.Error("Redis连接失败", zap.String("addr", redisConf.Addr()), zap.String("error", err.Error()))
		return nil
	}
	global.Log.Info("Redis连接成功", zap.String("method", "InitRedis"), zap.String("path", "core/redis.go"))
	return rdb
}
