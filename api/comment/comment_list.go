package comment

import (
	"fkemo/global"
	"fkemo/models"
	"fkemo/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (cm *Comment) CommentList(c *gin.Context) {
	var uri models.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		global.Log.Error("c.ShouldBindUri() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	exist, err := models.PostExist(uri.ID)
	if err != nil {
		global.Log.Error("models.PostExist() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "获取评论失败")
		return
	}
	if !exist {
		res.Error(c, res.PostNotFound, "帖子不存在")
		return
	}

	comments, err := models.GetPostComments(uri.ID)
	if err != nil {
		global.Log.Error("models.GetPostComments() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "获取评论失败")
		return
	}
	global.Log.Info("获取评论成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, comments)
}
