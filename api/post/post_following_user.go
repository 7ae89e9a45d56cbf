package post

import (
	"fkemo/global"
	"fkemo/middleware"
	"fkemo/models"
	"fkemo/models/res"
	"fkemo/service/search_ser"
	"fkemo/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type PostFollowingUserRequest struct {
	models.PageInfo
	FollowingID uint `uri:"id" validate:"required,gt=0"`
}

// PostFollowingUser 获取某个关注用户的帖子并分页显示。
// 未关注对方时返回领域错误，而不是空页
func (p *Post) PostFollowingUser(c *gin.Context) {
	var req PostFollowingUserRequest
	if err := c.ShouldBindUri(&req); err != nil {
		global.Log.Error("c.ShouldBindUri() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	if err := c.ShouldBindQuery(&req.PageInfo); err != nil {
		global.Log.Error("c.ShouldBindQuery() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	err := utils.Validate(req)
	if err != nil {
		global.Log.Error("utils.Validate() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}
	req.Normalize()

	user := middleware.CurrentUser(c)
	following, err := models.IsFollowing(user.ID, req.FollowingID)
	if err != nil {
		global.Log.Error("models.IsFollowing() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "加载失败")
		return
	}
	if !following {
		res.Error(c, res.NotFollowing, "未关注该用户")
		return
	}

	list, total, err := search_ser.ComList(models.PostModel{}, search_ser.Option{
		PageInfo: req.PageInfo,
		Where:    global.DB.Where("user_id = ?", req.FollowingID),
		Preload:  []string{"Images"},
	})
	if err != nil {
		global.Log.Error("search_ser.ComList() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "加载失败")
		return
	}
	global.Log.Info("关注用户帖子列表成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.SuccessWithPage(c, list, total, req.Page, req.PageSize)
}
