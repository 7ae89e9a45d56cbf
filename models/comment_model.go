package models

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"fkemo/global"

	"gorm.io/gorm"
)

var (
	ErrEmptyContent   = errors.New("评论内容不能为空")
	ErrContentTooLong = errors.New("评论内容不能超过1000字")
)

// CommentModel 评论模型，昵称是评论时刻的快照，
// 用户之后改昵称不影响历史评论
type CommentModel struct {
	MODEL    `json:","`
	Content  string `json:"content" gorm:"type:text"`
	PostID   uint   `json:"post_id" gorm:"index"`
	UserID   uint   `json:"user_id"`
	Nickname string `json:"nick_name" gorm:"column:nick_name;size:50"`
}

// commentValidate 验证评论
func commentValidate(comment *CommentModel) error {
	content := strings.TrimSpace(comment.Content)
	if content == "" {
		return ErrEmptyContent
	}
	// 按字符数限制，与请求参数校验的 max=1000 口径一致
	if utf8.RuneCountInString(content) > 1000 {
		return ErrContentTooLong
	}
	return nil
}

// CommentCreate 创建评论
func CommentCreate(comment *CommentModel) error {
	// 评论内容验证和过滤
	if err := commentValidate(comment); err != nil {
		return err
	}
	comment.Content = FilterContent(comment.Content)

	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return fmt.Errorf("创建评论失败: %w", err)
		}
		return nil
	})
}

// GetPostComments 获取帖子的全部评论，按创建时间升序
func GetPostComments(postID uint) ([]CommentModel, error) {
	var comments []CommentModel
	err := global.DB.Model(&CommentModel{}).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("获取评论失败: %w", err)
	}
	return comments, nil
}
