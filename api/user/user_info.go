package user

import (
	"fkemo/global"
	"fkemo/middleware"
	"fkemo/models/res"
	"fkemo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserInfoResponse struct {
	ID                 uint     `json:"id"`
	PhoneNumber        string   `json:"phone_number"`
	Nickname           string   `json:"nick_name"`
	Role               string   `json:"role"`
	InterestCategories []string `json:"interest_categories"`
	FanTypes           []string `json:"fan_types"`
}

func (u *User) Userinfo(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		res.Error(c, res.ServerError, "获取用户信息失败")
		return
	}
	global.Log.Info("获取用户信息成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, UserInfoResponse{
		ID:                 user.ID,
		PhoneNumber:        user.PhoneNumber,
		Nickname:           user.Nickname,
		Role:               string(user.Role),
		InterestCategories: utils.SplitTags(user.InterestCategories),
		FanTypes:           utils.SplitTags(user.FanTypes),
	})
}
