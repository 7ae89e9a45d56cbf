package flags

import (
	"fkemo/global"
	"fkemo/models"
	"fkemo/models/ctypes"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func User(c *cli.Context) error {
	phone := c.String("phone")
	nickName := c.String("nick_name")
	password := c.String("password")
	role := c.String("role")
	ip := "127.0.0.1"
	userRole := ctypes.RoleUser
	if role == "admin" {
		userRole = ctypes.RoleAdmin
	}

	user := &models.UserModel{
		PhoneNumber: phone,
		Nickname:    nickName,
		Password:    password,
		Role:        userRole,
	}

	if err := user.Create(ip); err != nil {
		global.Log.Error("用户创建失败",
			zap.String("error", err.Error()),
		)
		return err
	}

	global.Log.Infof("用户%s创建成功,phone:%s,role:%s", nickName, user.PhoneNumber, string(userRole))
	return nil
}
