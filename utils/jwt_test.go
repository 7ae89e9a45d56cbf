package utils

import (
	"testing"
	"time"

	"fkemo/global"
	"fkemo/models/ctypes"

	"github.com/dgrijalva/jwt-go"
)

func TestGenerateAndParseToken(t *testing.T) {
	payload := PayLoad{
		Phone:  "15800000001",
		Role:   ctypes.RoleUser,
		UserID: 1,
	}
	token, err := GenerateAccessToken(payload)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.Subject != "15800000001" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "15800000001")
	}
	if claims.Phone != "15800000001" {
		t.Errorf("Phone = %q, want %q", claims.Phone, "15800000001")
	}
	if claims.UserID != 1 {
		t.Errorf("UserID = %d, want 1", claims.UserID)
	}
	if claims.Issuer != "fkemo" {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, "fkemo")
	}

	// 有效期应为7天
	gotTTL := time.Unix(claims.ExpiresAt, 0).Sub(time.Unix(claims.IssuedAt, 0))
	wantTTL := 7 * 24 * time.Hour
	if gotTTL != wantTTL {
		t.Errorf("token有效期 = %v, want %v", gotTTL, wantTTL)
	}
}

func TestParseExpiredToken(t *testing.T) {
	claims := CustomClaims{
		PayLoad: PayLoad{Phone: "15800000001", Role: ctypes.RoleUser, UserID: 1},
		StandardClaims: jwt.StandardClaims{
			Subject:   "15800000001",
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
			Issuer:    global.Config.Jwt.Issuer,
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(global.Config.Jwt.Secret))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	_, err = ParseToken(token)
	if err == nil {
		t.Fatal("过期token应当解析失败")
	}
	if err.Error() != "token已过期" {
		t.Errorf("error = %q, want %q", err.Error(), "token已过期")
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	claims := CustomClaims{
		PayLoad: PayLoad{Phone: "15800000001"},
		StandardClaims: jwt.StandardClaims{
			Subject:   "15800000001",
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	if _, err := ParseToken(token); err == nil {
		t.Fatal("错误密钥签发的token应当解析失败")
	}
}

func TestParseTokenMalformed(t *testing.T) {
	if _, err := ParseToken("not-a-token"); err == nil {
		t.Fatal("格式错误的token应当解析失败")
	}
}
