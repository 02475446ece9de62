// redis.go
package repository

import (
	"context"
	"fmt"

	"go-splendor/config"

	"github.com/go-redis/redis/v8"
)

// InitRedis 连接 Redis 并 Ping 一次
func InitRedis(ctx context.Context, cfg config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Docker 里用服务名或内网IP
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}
	return rdb, nil
}
