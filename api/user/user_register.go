package user

import (
	"errors"

	"fkemo/api/system"
	"fkemo/global"
	"fkemo/models"
	"fkemo/models/res"
	"fkemo/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type UserRegisterRequest struct {
	PhoneNumber        string   `json:"phone_number" validate:"required,min=5,max=15"`
	Password           string   `json:"password" validate:"required,min=6,max=50"`
	Nickname           string   `json:"nickname" validate:"required,min=1,max=50"`
	InterestCategories []string `json:"interest_categories"`
	FanTypes           []string `json:"fan_types"`
	Captcha            string   `json:"captcha"`
	CaptchaID          string   `json:"captcha_id"`
}

func (u *User) UserRegister(c *gin.Context) {
	var req UserRegisterRequest
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

	if global.Config.Captcha.Open {
		if req.Captcha == "" || req.CaptchaID == "" || !system.Store.Verify(req.CaptchaID, req.Captcha, true) {
			res.Error(c, res.InvalidParameter, "验证码错误")
			return
		}
	}

	user := &models.UserModel{
		PhoneNumber:        req.PhoneNumber,
		Password:           req.Password,
		Nickname:           req.Nickname,
		InterestCategories: utils.JoinTags(req.InterestCategories),
		FanTypes:           utils.JoinTags(req.FanTypes),
	}

	if err := user.Create(c.ClientIP()); err != nil {
		if errors.Is(err, models.ErrPhoneExists) {
			res.Error(c, res.PhoneExists, "手机号已注册")
			return
		}
		global.Log.Error("user.Create() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "用户创建失败")
		return
	}
	global.Log.Info("用户注册成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, user.Public())
}
