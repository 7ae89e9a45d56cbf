package models

import (
	"fkemo/models/ctypes"

	"gorm.io/gorm"
)

type PageInfo struct {
	Page     int `json:"page" form:"page" validate:"omitempty,gt=0"`
	PageSize int `json:"page_size" form:"page_size" validate:"omitempty,gt=0"`
}

// Normalize 页码和每页数量的默认值
func (p *PageInfo) Normalize() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 10
	}
}

// Offset 计算分页偏移量
func (p PageInfo) Offset() int {
	return (p.Page - 1) * p.PageSize
}

type MODEL struct {
	ID        uint           `gorm:"primaryKey;comment:id" json:"id" structs:"-"`
	CreatedAt ctypes.MyTime  `gorm:"type:datetime NOT NULL DEFAULT CURRENT_TIMESTAMP;comment:创建时间" json:"created_at" structs:"-"`
	UpdatedAt ctypes.MyTime  `gorm:"type:datetime NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP;comment:更新时间" json:"updated_at" structs:"-"`
	DeletedAt gorm.DeletedAt `gorm:"type:datetime NULL;index;comment:删除时间" json:"-" structs:"-"`
}

type IDRequest struct {
	ID uint `json:"id" uri:"id" form:"id" validate:"required,gt=0"`
}
