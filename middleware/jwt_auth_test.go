package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"fkemo/config"
	"fkemo/global"
	"fkemo/models"
	"fkemo/models/ctypes"
	"fkemo/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	global.Log = zap.NewNop().Sugar()
	global.Config = &config.Config{
		Jwt: config.Jwt{
			Secret:  "test-secret",
			Expires: 7,
			Issuer:  "fkemo",
		},
	}
	os.Exit(m.Run())
}

func newAuthRouter() *gin.Engine {
	r := gin.New()
	r.GET("/protected", JwtAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, authHeader string) (*httptest.ResponseRecorder, res.StandardResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body res.StandardResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("响应解析失败: %v, body=%s", err, w.Body.String())
	}
	return w, body
}

func TestJwtAuthMissingToken(t *testing.T) {
	r := newAuthRouter()

	tests := []struct {
		name   string
		header string
	}{
		{"无Authorization头", ""},
		{"缺少Bearer前缀", "abcdef.ghijkl.mnopqr"},
		{"前缀错误", "Basic abcdef"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := doRequest(t, r, tt.header)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
			if body.Success {
				t.Error("success 应为 false")
			}
			if body.Code != res.TokenMissing {
				t.Errorf("code = %d, want %d", body.Code, res.TokenMissing)
			}
		})
	}
}

func TestJwtAuthInvalidToken(t *testing.T) {
	r := newAuthRouter()

	w, body := doRequest(t, r, "Bearer not-a-real-token")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if body.Code != res.TokenInvalid {
		t.Errorf("code = %d, want %d", body.Code, res.TokenInvalid)
	}
}

// newAdminRouter 用一个设置当前用户的前置中间件模拟已通过 JwtAuth 的请求，
// handlerRan 记录受保护的 handler 是否被执行
func newAdminRouter(user *models.UserModel, handlerRan *bool) *gin.Engine {
	r := gin.New()
	r.POST("/admin-only", func(c *gin.Context) {
		if user != nil {
			c.Set("user", user)
		}
	}, JwtAdmin(), func(c *gin.Context) {
		*handlerRan = true
		res.Success(c, "created")
	})
	return r
}

// 非管理员必须在 handler 执行之前就被拒绝，403 响应体后面不能跟着 handler 的输出
func TestJwtAdminRejectsNonAdminBeforeHandler(t *testing.T) {
	handlerRan := false
	r := newAdminRouter(&models.UserModel{
		Nickname: "普通用户",
		Role:     ctypes.RoleUser,
	}, &handlerRan)

	req := httptest.NewRequest(http.MethodPost, "/admin-only", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if handlerRan {
		t.Error("非管理员请求不应执行受保护的 handler")
	}
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}

	var body res.StandardResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("响应体应只包含一个错误信封: %v, body=%s", err, w.Body.String())
	}
	if body.Success {
		t.Error("success 应为 false")
	}
	if body.Code != res.PermissionDenied {
		t.Errorf("code = %d, want %d", body.Code, res.PermissionDenied)
	}
}

func TestJwtAdminMissingUser(t *testing.T) {
	handlerRan := false
	r := newAdminRouter(nil, &handlerRan)

	req := httptest.NewRequest(http.MethodPost, "/admin-only", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if handlerRan {
		t.Error("未认证请求不应执行受保护的 handler")
	}
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestJwtAdminAllowsAdmin(t *testing.T) {
	handlerRan := false
	r := newAdminRouter(&models.UserModel{
		Nickname: "管理员",
		Role:     ctypes.RoleAdmin,
	}, &handlerRan)

	req := httptest.NewRequest(http.MethodPost, "/admin-only", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if !handlerRan {
		t.Error("管理员请求应执行受保护的 handler")
	}
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
