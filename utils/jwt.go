package utils

import (
	"errors"
	"time"

	"fkemo/global"
	"fkemo/models/ctypes"

	"github.com/dgrijalva/jwt-go"
)

type PayLoad struct {
	Phone  string          `json:"phone"`
	Role   ctypes.UserRole `json:"role"`
	UserID uint            `json:"user_id"`
}

type CustomClaims struct {
	PayLoad
	jwt.StandardClaims
}

// GenerateAccessToken 生成 Access Token，主题为手机号
func GenerateAccessToken(payload PayLoad) (string, error) {
	claims := CustomClaims{
		PayLoad: payload,
		StandardClaims: jwt.StandardClaims{
			Subject:   payload.Phone,
			ExpiresAt: time.Now().Add(time.Duration(global.Config.Jwt.Expires) * 24 * time.Hour).Unix(),
			IssuedAt:  time.Now().Unix(),
			Issuer:    global.Config.Jwt.Issuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(global.Config.Jwt.Secret))
}

// ParseToken 解析 Token
func ParseToken(tokenString string) (*CustomClaims, error) {
	var claims CustomClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		// 只接受 HMAC 签名算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(global.Config.Jwt.Secret), nil
	})

	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok {
			if ve.Errors&jwt.ValidationErrorExpired != 0 {
				return nil, errors.New("token已过期")
			} else if ve.Errors&jwt.ValidationErrorMalformed != 0 {
				return nil, errors.New("token格式错误")
			} else if ve.Errors&jwt.ValidationErrorSignatureInvalid != 0 {
				return nil, errors.New("token签名无效")
			} else if ve.Errors&jwt.ValidationErrorNotValidYet != 0 {
				return nil, errors.New("token尚未生效")
			}
		}
		return nil, errors.New("token无效")
	}

	if !token.Valid {
		return nil, errors.New("token验证失败")
	}

	return &claims, nil
}
