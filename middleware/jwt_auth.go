package middleware

import (
	"net/http"

	"fkemo/global"
	"fkemo/models"
	"fkemo/models/res"
	"fkemo/service/redis_ser"
	"fkemo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JwtAuth 中间件，验证 Bearer Token 并将当前用户解析到上下文
func JwtAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.Request.Header.Get("Authorization")
		// 检查 Token 是否存在并去除 "Bearer " 前缀
		if len(tokenString) < 7 || tokenString[:7] != "Bearer " {
			res.HttpError(c, http.StatusUnauthorized, res.TokenMissing, "缺少token")
			c.Abort()
			return
		}
		tokenString = tokenString[7:]

		// 检查令牌是否在黑名单中
		isBlacklisted, err := redis_ser.IsTokenBlacklisted(tokenString)
		if err != nil {
			global.Log.Error("检查令牌黑名单失败", zap.Error(err))
			res.HttpError(c, http.StatusInternalServerError, res.ServerError, "服务器错误")
			c.Abort()
			return
		}
		if isBlacklisted {
			res.HttpError(c, http.StatusUnauthorized, res.TokenInvalid, "token已失效")
			c.Abort()
			return
		}

		// 解析 Token
		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			if err.Error() == "token已过期" {
				res.HttpError(c, http.StatusUnauthorized, res.TokenExpired, "token已过期")
				c.Abort()
				return
			}
			res.HttpError(c, http.StatusUnauthorized, res.TokenInvalid, "token无效")
			c.Abort()
			return
		}

		// 令牌主题是手机号，必须能解析回一个存在的用户
		var user models.UserModel
		if err := user.FindByPhone(claims.Subject); err != nil {
			res.HttpError(c, http.StatusUnauthorized, res.UserNotFound, "用户不存在")
			c.Abort()
			return
		}

		// 将用户信息保存到上下文中，方便后续使用
		c.Set("claims", claims)
		c.Set("user", &user)

		c.Next()
	}
}

// JwtAdmin 管理员角色校验，必须注册在 JwtAuth 之后，
// 角色不符时在后续 handler 执行前就中止请求
func JwtAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin() {
			res.HttpError(c, http.StatusForbidden, res.PermissionDenied, "权限不足")
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser 从上下文取出当前用户
func CurrentUser(c *gin.Context) *models.UserModel {
	value, ok := c.Get("user")
	if !ok {
		return nil
	}
	user, ok := value.(*models.UserModel)
	if !ok {
		return nil
	}
	return user
}
