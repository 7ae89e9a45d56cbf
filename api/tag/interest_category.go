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

type TagCreateRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

func (t *Tag) InterestCategoryCreate(c *gin.Context) {
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

	category := &models.InterestCategoryModel{Name: req.Name}
	if err := category.Create(); err != nil {
		if errors.Is(err, models.ErrTagExists) {
			res.Error(c, res.TagExists, "标签名已存在")
			return
		}
		global.Log.Error("category.Create() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "兴趣类别创建失败")
		return
	}
	global.Log.Info("兴趣类别创建成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, category)
}

func (t *Tag) InterestCategoryList(c *gin.Context) {
	categories, err := models.GetAllInterestCategories()
	if err != nil {
		global.Log.Error("models.GetAllInterestCategories() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "加载失败")
		return
	}
	global.Log.Info("兴趣类别列表成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, categories)
}
