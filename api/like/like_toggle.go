package like

import (
	"fkemo/global"
	"fkemo/middleware"
	"fkemo/models"
	"fkemo/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LikeToggle 切换点赞状态
func (l *Like) LikeToggle(c *gin.Context) {
	var uri models.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		global.Log.Error("c.ShouldBindUri() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	exist, err := models.PostExist(uri.ID)
	if err != nil {
		global.Log.Error("models.PostExist() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "点赞失败")
		return
	}
	if !exist {
		res.Error(c, res.PostNotFound, "帖子不存在")
		return
	}

	user := middleware.CurrentUser(c)
	result, err := models.ToggleLike(uri.ID, user.ID)
	if err != nil {
		global.Log.Error("models.ToggleLike() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "点赞失败")
		return
	}

	global.Log.Info("点赞切换成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, result)
}
