package models

import (
	"errors"
	"fmt"

	"fkemo/global"
	"fkemo/models/ctypes"

	"gorm.io/gorm"
)

var (
	ErrFollowExists = errors.New("已关注该用户")
	ErrFollowSelf   = errors.New("不能关注自己")
)

// FollowModel 关注关系，(follower_id, following_id) 全局唯一
type FollowModel struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	FollowerID  uint          `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_following"`
	FollowingID uint          `json:"following_id" gorm:"index;uniqueIndex:idx_follower_following"`
	CreatedAt   ctypes.MyTime `json:"created_at" gorm:"type:datetime NOT NULL DEFAULT CURRENT_TIMESTAMP"`
}

func (FollowModel) TableName() string {
	return "follows"
}

// Create 创建关注关系，重复关注返回 ErrFollowExists
func (f *FollowModel) Create() error {
	if f.FollowerID == f.FollowingID {
		return ErrFollowSelf
	}

	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(f).Error; err != nil {
			// 唯一索引冲突转换为领域错误
			if IsDuplicateKeyErr(err) {
				return ErrFollowExists
			}
			return fmt.Errorf("创建关注关系失败: %w", err)
		}
		return nil
	})
}

// IsFollowing 检查关注关系是否存在
func IsFollowing(followerID, followingID uint) (bool, error) {
	var count int64
	err := global.DB.Model(&FollowModel{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

// GetFollowingUsers 获取关注的用户列表
func GetFollowingUsers(followerID uint) ([]PublicUser, error) {
	return followEdgeUsers("following_id", "follower_id", followerID)
}

// GetFollowerUsers 获取粉丝列表
func GetFollowerUsers(followingID uint) ([]PublicUser, error) {
	return followEdgeUsers("follower_id", "following_id", followingID)
}

// followEdgeUsers 沿关注边取对端用户
func followEdgeUsers(selectColumn, whereColumn string, userID uint) ([]PublicUser, error) {
	var users []UserModel
	sub := global.DB.Model(&FollowModel{}).
		Select(selectColumn).
		Where(whereColumn+" = ?", userID)
	if err := global.DB.Where("id IN (?)", sub).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("查询关注关系失败: %w", err)
	}

	result := make([]PublicUser, 0, len(users))
	for i := range users {
		result = append(result, users[i].Public())
	}
	return result, nil
}

// FollowingIDsQuery 返回某用户全部关注对象ID的子查询，供帖子流使用
func FollowingIDsQuery(followerID uint) *gorm.DB {
	return global.DB.Model(&FollowModel{}).
		Select("following_id").
		Where("follower_id = ?", followerID)
}
