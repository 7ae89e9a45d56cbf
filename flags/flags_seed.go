package flags

import (
	"errors"

	"fkemo/global"
	"fkemo/models"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// 默认标签集
var (
	defaultInterests = []string{"科技", "文化", "生活", "娱乐", "体育", "教育", "财经", "汽车", "旅游", "美食"}
	defaultFanTypes  = []string{"教师", "键盘侠", "码农", "机车", "喷子", "二次元", "道友", "赛博朋克", "搞笑", "感性"}
)

func Seed(c *cli.Context) error {
	for _, name := range defaultInterests {
		category := &models.InterestCategoryModel{Name: name}
		if err := category.Create(); err != nil {
			if errors.Is(err, models.ErrTagExists) {
				continue
			}
			global.Log.Error("写入兴趣类别失败", zap.String("name", name), zap.String("error", err.Error()))
			return err
		}
	}

	for _, name := range defaultFanTypes {
		fanType := &models.FanTypeModel{Name: name}
		if err := fanType.Create(); err != nil {
			if errors.Is(err, models.ErrTagExists) {
				continue
			}
			global.Log.Error("写入粉丝类型失败", zap.String("name", name), zap.String("error", err.Error()))
			return err
		}
	}

	global.Log.Info("默认标签写入成功", zap.String("method", "Seed"), zap.String("path", "flags/flags_seed.go"))
	return nil
}
