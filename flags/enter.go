package flags

import (
	"os"

	"fkemo/global"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func Newflags() {
	var app = cli.NewApp()
	app.Name = "fkemo"
	app.Usage = "粉圈社区后端"
	app.Commands = []*cli.Command{
		{
			Name:    "database",
			Aliases: []string{"db"},
			Usage:   "建表",
			Action:  DB,
		},
		{
			Name:    "seed",
			Aliases: []string{"s"},
			Usage:   "写入默认兴趣类别和粉丝类型",
			Action:  Seed,
		},
		{
			Name:    "user",
			Aliases: []string{"u"},
			Usage:   "创建用户",
			Action:  User,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "phone",
					Aliases: []string{"m"},
					Usage:   "手机号",
					Value:   "15800000000",
				},
				&cli.StringFlag{
					Name:    "nick_name",
					Aliases: []string{"n"},
					Usage:   "用户昵称",
					Value:   "admin",
				},
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "用户密码",
					Value:   "123456",
				},
				&cli.StringFlag{
					Name:    "role",
					Aliases: []string{"r"},
					Usage:   "用户角色 (admin/user)",
					Value:   "admin",
				},
			},
		},
	}
	if len(os.Args) > 1 {
		err := app.Run(os.Args)
		if err != nil {
			global.Log.Fatal("初始化命令失败", zap.String("error", err.Error()))
		}
		os.Exit(0)
	}
}
