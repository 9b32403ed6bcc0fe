package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/bloomfolio/internal/db"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupRouterTest(t *testing.T) (*gin.Engine, string, func()) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(
		&db.User{},
		&db.BasicInfo{},
		&db.AboutSection{},
		&db.Design{},
		&db.Project{},
		&db.SocialLink{},
		&db.GuestbookEntry{},
		&db.Stat{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	db.DB = gdb
	if err := db.EnsureUser("admin", "correct-password"); err != nil {
		t.Fatalf("failed to seed admin user: %v", err)
	}

	uploadDir := t.TempDir()
	r := SetupRouter("test-session-secret", uploadDir, "/static/uploads")

	return r, uploadDir, func() {
		sqlDB, err := db.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func doRequest(r *gin.Engine, method, target string, payload map[string]any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginSessionFlow(t *testing.T) {
	r, _, cleanup := setupRouterTest(t)
	defer cleanup()

	// 未登录时受保护接口返回 401
	if w := doRequest(r, http.MethodGet, "/api/admin/summary", nil, nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unauthenticated summary, got %d", w.Code)
	}

	// 密码错误不建立会话
	w := doRequest(r, http.MethodPost, "/api/admin/login", map[string]any{"password": "wrong-password"}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", w.Code)
	}

	w = doRequest(r, http.MethodPost, "/api/admin/login", map[string]any{"username": "admin", "password": "correct-password"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for valid login, got %d: %s", w.Code, w.Body.String())
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatalf("expected login to set a session cookie")
	}

	w = doRequest(r, http.MethodGet, "/api/admin/session", nil, cookies)
	var sessionResp struct {
		Authenticated bool   `json:"authenticated"`
		Username      string `json:"username"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &sessionResp); err != nil {
		t.Fatalf("failed to decode session response: %v", err)
	}
	if !sessionResp.Authenticated || sessionResp.Username != "admin" {
		t.Fatalf("expected authenticated session for admin, got %+v", sessionResp)
	}

	if w := doRequest(r, http.MethodGet, "/api/admin/summary", nil, cookies); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for authenticated summary, got %d", w.Code)
	}

	w = doRequest(r, http.MethodPost, "/api/admin/logout", nil, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for logout, got %d", w.Code)
	}
	cookies = w.Result().Cookies()

	w = doRequest(r, http.MethodGet, "/api/admin/session", nil, cookies)
	sessionResp.Authenticated = true
	if err := json.Unmarshal(w.Body.Bytes(), &sessionResp); err != nil {
		t.Fatalf("failed to decode session response: %v", err)
	}
	if sessionResp.Authenticated {
		t.Fatalf("expected logout to clear the session")
	}
}

func TestFlowerCounterEndpoints(t *testing.T) {
	r, _, cleanup := setupRouterTest(t)
	defer cleanup()

	var resp struct {
		Count int `json:"flower_count"`
	}

	w := doRequest(r, http.MethodGet, "/api/stats/flower", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Count != 0 {
		t.Fatalf("expected fresh counter to read 0, got %d", resp.Count)
	}

	for i := 1; i <= 2; i++ {
		w = doRequest(r, http.MethodPost, "/api/stats/flower", nil, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Count != i {
			t.Fatalf("expected count %d after %d increments, got %d", i, i, resp.Count)
		}
	}
}

func TestStaticUploadServing(t *testing.T) {
	r, uploadDir, cleanup := setupRouterTest(t)
	defer cleanup()

	target := filepath.Join(uploadDir, "images", "sample.txt")
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		t.Fatalf("failed to create upload dir: %v", err)
	}
	if err := os.WriteFile(target, []byte("hello"), 0o644); err != nil {
		t.Fatalf("failed to seed upload: %v", err)
	}

	w := doRequest(r, http.MethodGet, "/static/uploads/images/sample.txt", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for uploaded file, got %d", w.Code)
	}
	if w.Body.String() != "hello" {
		t.Fatalf("unexpected file body: %q", w.Body.String())
	}
}
