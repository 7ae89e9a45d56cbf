package tag

import (
	"errors"

	"fkemo/global"
	"fkemo/models"
	"fkemo/models/res"
	"fkemo/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

func (t *Tag) FanTypeCreate(c *gin.Context) {
	var req TagCreateRequest
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

	fanType := &models.FanTypeModel{Name: req.Name}
	if err := fanType.Create(); err != nil {
		if errors.Is(err, models.ErrTagExists) {
			res.Error(c, res.TagExists, "标签名已存在")
			return
		}
		global.Log.Error("fanType.Create() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "粉丝类型创建失败")
		return
	}
	global.Log.Info("粉丝类型创建成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, fanType)
}

func (t *Tag) FanTypeList(c *gin.Context) {
	fanTypes, err := models.GetAllFanTypes()
	if err != nil {
		global.Log.Error("models.GetAllFanTypes() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "加载失败")
		return
	}
	global.Log.Info("粉丝类型列表成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, fanTypes)
}
