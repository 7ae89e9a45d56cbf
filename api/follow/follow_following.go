package follow

import (
	"fkemo/global"
	"fkemo/middleware"
	"fkemo/models"
	"fkemo/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FollowingListResponse struct {
	Following []models.PublicUser `json:"following"`
	Count     int                 `json:"count"`
}

// FollowingList 获取关注的用户列表
func (f *Follow) FollowingList(c *gin.Context) {
	user := middleware.CurrentUser(c)
	following, err := models.GetFollowingUsers(user.ID)
	if err != nil {
		global.Log.Error("models.GetFollowingUsers() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "获取关注列表失败")
		return
	}
	global.Log.Info("获取关注列表成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, FollowingListResponse{
		Following: following,
		Count:     len(following),
	})
}
