package redis_ser

import (
	"context"
	"time"

	"fkemo/global"
)

// 令牌黑名单相关
const (
	TokenBlacklist = "token_blacklist:"
)

// InvalidateToken 登出时将 access token 加入黑名单，保留到令牌自然过期
func InvalidateToken(accessToken string, ttl time.Duration) error {
	if global.Redis == nil {
		return nil
	}
	if ttl <= 0 {
		return nil
	}
	key := GetRedisKey(TokenBlacklist + accessToken)
	return global.Redis.Set(context.Background(), key, "invalid", ttl).Err()
}

// IsTokenBlacklisted 检查令牌是否在黑名单中，redis不可用时放行
func IsTokenBlacklisted(accessToken string) (bool, error) {
	if global.Redis == nil {
		return false, nil
	}
	key := GetRedisKey(TokenBlacklist + accessToken)
	n, err := global.Redis.Exists(context.Background(), key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
