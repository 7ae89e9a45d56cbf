package models

import (
	"errors"
	"fmt"

	"fkemo/global"
	"fkemo/models/ctypes"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeModel 点赞模型，一对 (post_id, user_id) 只有一行，
// 点赞/取消通过状态位切换，不反复插入删除
type LikeModel struct {
	MODEL  `json:","`
	PostID uint              `json:"post_id" gorm:"uniqueIndex:idx_post_user"`
	UserID uint              `json:"user_id" gorm:"uniqueIndex:idx_post_user"`
	Status ctypes.LikeStatus `json:"status" gorm:"size:10;default:active"`
}

// LikeResult 一次切换的结果
type LikeResult struct {
	Action ctypes.LikeAction `json:"action"`
	Like   *LikeModel        `json:"like,omitempty"`
}

// ToggleLike 切换点赞状态：无行则插入为已点赞，
// 已点赞翻转为取消，已取消翻转为点赞
func ToggleLike(postID, userID uint) (*LikeResult, error) {
	var result *LikeResult
	err := global.DB.Transaction(func(tx *gorm.DB) error {
		var like LikeModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("post_id = ? AND user_id = ?", postID, userID).
			Take(&like).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			like = LikeModel{PostID: postID, UserID: userID, Status: ctypes.LikeActive}
			if err := tx.Create(&like).Error; err != nil {
				// 并发插入撞了唯一索引，改走更新路径
				if IsDuplicateKeyErr(err) {
					return toggleExisting(tx, postID, userID, &result)
				}
				return fmt.Errorf("创建点赞失败: %w", err)
			}
			result = &LikeResult{Action: ctypes.ActionLiked, Like: &like}
			return nil
		}
		if err != nil {
			return fmt.Errorf("查询点赞失败: %w", err)
		}

		return flipLike(tx, &like, &result)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// toggleExisting 行已存在时的切换路径
func toggleExisting(tx *gorm.DB, postID, userID uint, result **LikeResult) error {
	var like LikeModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Take(&like).Error; err != nil {
		return fmt.Errorf("查询点赞失败: %w", err)
	}
	return flipLike(tx, &like, result)
}

// flipLike 翻转状态并落库
func flipLike(tx *gorm.DB, like *LikeModel, result **LikeResult) error {
	next, action := like.Status.Toggle()
	if err := tx.Model(like).Update("status", next).Error; err != nil {
		return fmt.Errorf("更新点赞状态失败: %w", err)
	}
	like.Status = next

	if action == ctypes.ActionLiked {
		*result = &LikeResult{Action: action, Like: like}
	} else {
		*result = &LikeResult{Action: action}
	}
	return nil
}

// GetPostLikeCount 获取帖子的有效点赞数
func GetPostLikeCount(postID uint) (int64, error) {
	var count int64
	err := global.DB.Model(&LikeModel{}).
		Where("post_id = ? AND status = ?", postID, ctypes.LikeActive).
		Count(&count).Error
	return count, err
}
