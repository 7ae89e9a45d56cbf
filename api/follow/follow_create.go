package follow

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

type FollowCreateRequest struct {
	FollowingID uint `json:"following_id" validate:"required,gt=0"`
}

func (f *Follow) FollowCreate(c *gin.Context) {
	var req FollowCreateRequest
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

	exist, err := models.UserExist(req.FollowingID)
	if err != nil {
		global.Log.Error("models.UserExist() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "关注失败")
		return
	}
	if !exist {
		res.Error(c, res.UserNotFound, "用户不存在")
		return
	}

	user := middleware.CurrentUser(c)
	follow := &models.FollowModel{
		FollowerID:  user.ID,
		FollowingID: req.FollowingID,
	}
	if err := follow.Create(); err != nil {
		// 重复关注和关注自己都是业务冲突，与"用户不存在"的错误码区分开
		if errors.Is(err, models.ErrFollowExists) {
			res.Error(c, res.FollowExists, "已关注该用户")
			return
		}
		if errors.Is(err, models.ErrFollowSelf) {
			res.Error(c, res.FollowSelf, "不能关注自己")
			return
		}
		global.Log.Error("follow.Create() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "关注失败")
		return
	}

	global.Log.Info("关注成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, follow)
}
