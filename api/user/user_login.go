package user

import (
	"fkemo/global"
	"fkemo/models"
	"fkemo/models/res"
	"fkemo/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// UserLoginRequest OAuth2 密码模式表单，username 为手机号
type UserLoginRequest struct {
	Username string `form:"username" validate:"required,min=5,max=15"`
	Password string `form:"password" validate:"required,min=6,max=50"`
}

type UserLoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (u *User) UserLogin(c *gin.Context) {
	var req UserLoginRequest
	if err := c.ShouldBind(&req); err != nil {
		global.Log.Error("c.ShouldBind() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	err := utils.Validate(req)
	if err != nil {
		global.Log.Error("utils.Validate() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	var user models.UserModel
	if err := user.FindByPhone(req.Username); err != nil {
		res.HttpError(c, 401, res.Unauthorized, "用户名或密码错误")
		return
	}

	if !user.ValidatePassword(req.Password) {
		res.HttpError(c, 401, res.PasswordError, "用户名或密码错误")
		return
	}

	accessToken, err := utils.GenerateAccessToken(utils.PayLoad{
		Phone:  user.PhoneNumber,
		Role:   user.Role,
		UserID: user.ID,
	})
	if err != nil {
		global.Log.Error("utils.GenerateAccessToken() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "生成access token失败")
		return
	}

	global.Log.Info("用户登录成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, UserLoginResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	})
}
