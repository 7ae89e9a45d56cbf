package comment

import (
	"errors"

	"fkemo/global"
	"fkemo/middleware"
	"fkemo/models"
	"fkemo/models/res"
	"fkemo/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type CommentCreateRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}

func (cm *Comment) CommentCreate(c *gin.Context) {
	var uri models.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		global.Log.Error("c.ShouldBindUri() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	var req CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		global.Log.Error("c.ShouldBindJSON() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	err := utils.Validate(req)
	if err != nil {
		global.Log.Error("utils.Validate() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	exist, err := models.PostExist(uri.ID)
	if err != nil {
		global.Log.Error("models.PostExist() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "创建评论失败")
		return
	}
	if !exist {
		res.Error(c, res.PostNotFound, "帖子不存在")
		return
	}

	user := middleware.CurrentUser(c)
	comment := &models.CommentModel{
		Content:  req.Content,
		PostID:   uri.ID,
		UserID:   user.ID,
		Nickname: user.Nickname, // 昵称快照
	}

	if err := models.CommentCreate(comment); err != nil {
		if errors.Is(err, models.ErrEmptyContent) || errors.Is(err, models.ErrContentTooLong) {
			res.Error(c, res.InvalidParameter, err.Error())
			return
		}
		global.Log.Error("models.CommentCreate() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "创建评论失败")
		return
	}

	global.Log.Info("创建评论成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, comment)
}
