package flags

import (
	"fkemo/global"
	"fkemo/models"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func DB(c *cli.Context) (err error) {
	err = global.DB.Set("gorm:table_options", "ENGINE=InnoDB").
		AutoMigrate(&models.UserModel{},
			&models.PostModel{},
			&models.PostImageModel{},
			&models.CommentModel{},
			&models.LikeModel{},
			&models.FollowModel{},
			&models.InterestCategoryModel{},
			&models.FanTypeModel{},
		)
	if err != nil {
		global.Log.Error("生成数据库表结构失败", zap.String("error", err.Error()))
		return nil
	}
	global.Log.Info("生成数据库表结构成功", zap.String("method", "DB"), zap.String("path", "flags/flags_db.go"))
	return nil
}
