package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("123456")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "123456" {
		t.Fatal("密码不应明文存储")
	}

	if !CheckPassword(hash, "123456") {
		t.Error("正确密码验证失败")
	}
	if CheckPassword(hash, "654321") {
		t.Error("错误密码验证通过")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("123456")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	h2, err := HashPassword("123456")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if h1 == h2 {
		t.Error("相同密码的两次hash应当不同（加盐）")
	}
}
