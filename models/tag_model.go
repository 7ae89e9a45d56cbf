package models

import (
	"errors"
	"fmt"

	"fkemo/global"
	"fkemo/models/ctypes"

	"gorm.io/gorm"
)

var ErrTagExists = errors.New("标签名已存在")

// InterestCategoryModel 兴趣类别
type InterestCategoryModel struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	Name      string        `json:"name" gorm:"size:50;uniqueIndex:idx_interest_name"`
	CreatedAt ctypes.MyTime `json:"created_at" gorm:"type:datetime NOT NULL DEFAULT CURRENT_TIMESTAMP"`
}

func (InterestCategoryModel) TableName() string {
	return "interest_categories"
}

// FanTypeModel 粉丝类型
type FanTypeModel struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	Name      string        `json:"name" gorm:"size:50;uniqueIndex:idx_fan_type_name"`
	CreatedAt ctypes.MyTime `json:"created_at" gorm:"type:datetime NOT NULL DEFAULT CURRENT_TIMESTAMP"`
}

func (FanTypeModel) TableName() string {
	return "fan_types"
}

// Create 创建兴趣类别，名称重复返回 ErrTagExists
func (m *InterestCategoryModel) Create() error {
	return tagCreate(m)
}

// Create 创建粉丝类型，名称重复返回 ErrTagExists
func (m *FanTypeModel) Create() error {
	return tagCreate(m)
}

func tagCreate(m interface{}) error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			if IsDuplicateKeyErr(err) {
				return ErrTagExists
			}
			return fmt.Errorf("创建标签失败: %w", err)
		}
		return nil
	})
}

// GetAllInterestCategories 获取全部兴趣类别
func GetAllInterestCategories() ([]InterestCategoryModel, error) {
	var list []InterestCategoryModel
	err := global.DB.Order("id ASC").Find(&list).Error
	return list, err
}

// GetAllFanTypes 获取全部粉丝类型
func GetAllFanTypes() ([]FanTypeModel, error) {
	var list []FanTypeModel
	err := global.DB.Order("id ASC").Find(&list).Error
	return list, err
}
