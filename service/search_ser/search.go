package search_ser

import (
	"fmt"

	"fkemo/global"
	"fkemo/models"

	"gorm.io/gorm"
)

// Option 查询选项结构体
type Option struct {
	models.PageInfo
	Where   *gorm.DB // 额外的查询条件
	Preload []string // 预加载的字段列表
	OrderBy string   // 排序字段，默认为 created_at desc
}

// ComList 通用分页列表查询
func ComList[T any](model T, option Option) (list []T, total int64, err error) {
	// 初始化查询构建器
	query := global.DB.Model(&model)

	// 设置默认分页
	option.Normalize()

	// 设置默认排序
	if option.OrderBy == "" {
		option.OrderBy = "created_at desc"
	}

	// 构建查询条件
	query = query.Where(model)

	if option.Where != nil {
		query = query.Where(option.Where)
	}

	// 获取总记录数
	if err = query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("统计总记录数失败: %w", err)
	}

	// 添加预加载关系
	for _, preload := range option.Preload {
		query = query.Preload(preload)
	}

	// 执行分页查询
	err = query.
		Limit(option.PageSize).
		Offset(option.Offset()).
		Order(option.OrderBy).
		Find(&list).Error

	if err != nil {
		return nil, 0, fmt.Errorf("执行查询失败: %w", err)
	}

	return list, total, nil
}
