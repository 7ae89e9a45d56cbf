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

// PostMine 获取当前用户的帖子并分页显示
func (p *Post) PostMine(c *gin.Context) {
	var req models.PageInfo
	if err := c.ShouldBindQuery(&req); err != nil {
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
	list, total, err := search_ser.ComList(models.PostModel{}, search_ser.Option{
		PageInfo: req,
		Where:    global.DB.Where("user_id = ?", user.ID),
		Preload:  []string{"Images"},
	})
	if err != nil {
		global.Log.Error("search_ser.ComList() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "加载失败")
		return
	}
	global.Log.Info("我的帖子列表成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.SuccessWithPage(c, list, total, req.Page, req.PageSize)
}
