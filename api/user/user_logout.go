package user

import (
	"time"

	"fkemo/global"
	"fkemo/models/res"
	"fkemo/service/redis_ser"
	"fkemo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (u *User) UserLogout(c *gin.Context) {
	accessToken := c.GetHeader("Authorization")

	if len(accessToken) < 7 || accessToken[:7] != "Bearer " {
		res.Error(c, res.TokenMissing, "缺少token")
		return
	}
	accessToken = accessToken[7:]

	claims, err := utils.ParseToken(accessToken)
	if err != nil {
		res.Error(c, res.TokenInvalid, "token无效")
		return
	}

	// 黑名单保留到令牌自然过期为止
	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if err := redis_ser.InvalidateToken(accessToken, ttl); err != nil {
		global.Log.Error("redis_ser.InvalidateToken() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "登出失败")
		return
	}
	global.Log.Info("用户退出成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, nil)
}
