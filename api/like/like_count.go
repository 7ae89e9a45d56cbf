package like

import (
	"fkemo/global"
	"fkemo/models"
	"fkemo/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LikeCountResponse struct {
	Count int64 `json:"count"`
}

// LikeCount 获取帖子的有效点赞数
func (l *Like) LikeCount(c *gin.Context) {
	var uri models.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		global.Log.Error("c.ShouldBindUri() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	exist, err := models.PostExist(uri.ID)
	if err != nil {
		global.Log.Error("models.PostExist() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "获取点赞数失败")
		return
	}
	if !exist {
		res.Error(c, res.PostNotFound, "帖子不存在")
		return
	}

	count, err := models.GetPostLikeCount(uri.ID)
	if err != nil {
		global.Log.Error("models.GetPostLikeCount() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "获取点赞数失败")
		return
	}

	global.Log.Info("获取点赞数成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, LikeCountResponse{Count: count})
}
