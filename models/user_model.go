package models

import (
	"errors"
	"fmt"
	"strings"

	"fkemo/global"
	"fkemo/models/ctypes"
	"fkemo/utils"

	"gorm.io/gorm"
)

var ErrPhoneExists = errors.New("手机号已注册")

// UserModel 用户模型
type UserModel struct {
	MODEL              `json:","`
	PhoneNumber        string          `json:"phone_number" gorm:"column:phone_number;size:15;uniqueIndex:idx_phone" validate:"required,min=5,max=15"`
	Password           string          `json:"-" validate:"required,min=6"`
	Nickname           string          `json:"nick_name" gorm:"column:nick_name;size:50" validate:"required,min=1,max=50"`
	Role               ctypes.UserRole `json:"role" gorm:"size:10;default:user"`
	InterestCategories string          `json:"interest_categories" gorm:"size:256"`
	FanTypes           string          `json:"fan_types" gorm:"size:256"`
	Address            string          `json:"address"`
}

// PublicUser 对外暴露的用户信息
type PublicUser struct {
	ID          uint          `json:"id"`
	PhoneNumber string        `json:"phone_number"`
	Nickname    string        `json:"nick_name"`
	CreatedAt   ctypes.MyTime `json:"created_at"`
	UpdatedAt   ctypes.MyTime `json:"updated_at"`
}

// Public 转换为对外的用户信息
func (u *UserModel) Public() PublicUser {
	return PublicUser{
		ID:          u.ID,
		PhoneNumber: u.PhoneNumber,
		Nickname:    u.Nickname,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// Create 创建用户，手机号重复返回 ErrPhoneExists
func (u *UserModel) Create(ip string) error {
	// 验证用户输入
	if err := utils.Validate(u); err != nil {
		return fmt.Errorf("输入验证失败: %w", err)
	}

	// 密码加密
	hashedPassword, err := utils.HashPassword(u.Password)
	if err != nil {
		return fmt.Errorf("密码处理失败: %w", err)
	}
	u.Password = hashedPassword

	// 获取地址信息
	u.Address = utils.GetAddrByIp(ip)

	if u.Role == "" {
		u.Role = ctypes.RoleUser
	}

	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			// 唯一索引冲突转换为领域错误，不向上抛原始约束异常
			if IsDuplicateKeyErr(err) {
				return ErrPhoneExists
			}
			return fmt.Errorf("创建用户失败: %w", err)
		}
		return nil
	})
}

// FindByPhone 根据手机号查找用户
func (u *UserModel) FindByPhone(phone string) error {
	return global.DB.Where("phone_number = ?", phone).Take(u).Error
}

// FindByID 根据ID查找用户
func (u *UserModel) FindByID(id uint) error {
	return global.DB.Take(u, id).Error
}

// ValidatePassword 验证密码
func (u *UserModel) ValidatePassword(password string) bool {
	return utils.CheckPassword(u.Password, password)
}

// IsAdmin 检查是否为管理员
func (u *UserModel) IsAdmin() bool {
	return u.Role == ctypes.RoleAdmin
}

// UserExist 检查用户是否存在
func UserExist(id uint) (bool, error) {
	var count int64
	err := global.DB.Model(&UserModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// IsDuplicateKeyErr 判断是否为唯一索引冲突
func IsDuplicateKeyErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// mysql 1062
	return strings.Contains(err.Error(), "1062") ||
		strings.Contains(err.Error(), "Duplicate entry")
}
