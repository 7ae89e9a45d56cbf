package follow

import (
	"fkemo/global"
	"fkemo/middleware"
	"fkemo/models"
	"fkemo/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FollowersListResponse struct {
	Followers []models.PublicUser `json:"followers"`
	Count     int                 `json:"count"`
}

// FollowersList 获取粉丝列表
func (f *Follow) FollowersList(c *gin.Context) {
	user := middleware.CurrentUser(c)
	followers, err := models.GetFollowerUsers(user.ID)
	if err != nil {
		global.Log.Error("models.GetFollowerUsers() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "获取粉丝列表失败")
		return
	}
	global.Log.Info("获取粉丝列表成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, FollowersListResponse{
		Followers: followers,
		Count:     len(followers),
	})
}
