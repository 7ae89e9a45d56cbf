package models

import (
	"fmt"

	"fkemo/global"

	"gorm.io/gorm"
)

// PostModel 帖子模型
type PostModel struct {
	MODEL   `json:","`
	Content string            `json:"content" gorm:"type:text" validate:"required"`
	UserID  uint              `json:"user_id" gorm:"index"`
	Images  []PostImageModel  `json:"images" gorm:"foreignKey:PostID"`
}

// PostImageModel 帖子图片模型
type PostImageModel struct {
	MODEL    `json:","`
	PostID   uint   `json:"post_id" gorm:"index"`
	ImageURL string `json:"image_url" gorm:"size:256"`
	Name     string `json:"name"`                                  // 原始文件名
	Size     int64  `json:"size"`                                  // 文件大小
	Hash     string `json:"hash" gorm:"index:idx_image_hash;size:32"` // 文件md5
}

func (PostImageModel) TableName() string {
	return "post_images"
}

// Create 创建帖子，图片记录随帖子一并写入
func (p *PostModel) Create() error {
	// 内容过滤
	p.Content = FilterContent(p.Content)

	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return fmt.Errorf("创建帖子失败: %w", err)
		}
		return nil
	})
}

// PostExist 检查帖子是否存在
func PostExist(id uint) (bool, error) {
	var count int64
	err := global.DB.Model(&PostModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
