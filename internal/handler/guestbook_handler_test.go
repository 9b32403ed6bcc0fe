package handler

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/bloomfolio/internal/db"
	"github.com/gin-gonic/gin"
)

func TestCreateGuestbookEntryValidation(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	w := postJSON(t, api.CreateGuestbookEntry, "/api/guestbook", map[string]any{"author_name": "  ", "message": "hello"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var count int64
	db.DB.Model(&db.GuestbookEntry{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected rejected entry to persist nothing, found %d rows", count)
	}
}

func TestCreateGuestbookEntryPublic(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	w := postJSON(t, api.CreateGuestbookEntry, "/api/guestbook", map[string]any{
		"author_name": " 방문자 ",
		"message":     "잘 보고 갑니다",
		"hobby":       "   ",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var entry db.GuestbookEntry
	if err := db.DB.First(&entry).Error; err != nil {
		t.Fatalf("failed to load entry: %v", err)
	}
	if entry.AuthorName != "방문자" {
		t.Fatalf("expected trimmed author name, got %q", entry.AuthorName)
	}
	if entry.Hobby != nil {
		t.Fatalf("expected whitespace-only hobby to persist as nil")
	}
}

func TestDeleteGuestbookEntry(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	entry := db.GuestbookEntry{AuthorName: "방문자", Message: "hello"}
	if err := db.DB.Create(&entry).Error; err != nil {
		t.Fatalf("failed to seed entry: %v", err)
	}

	deleteEntry := func(id string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodDelete, "/api/admin/guestbook/"+id, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = req
		c.Params = gin.Params{gin.Param{Key: "id", Value: id}}
		api.DeleteGuestbookEntry(c)
		return w
	}

	id := strconv.Itoa(int(entry.ID))
	if w := deleteEntry(id); w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if w := deleteEntry(id); w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for repeated delete, got %d", w.Code)
	}

	var count int64
	db.DB.Model(&db.GuestbookEntry{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected hard delete, found %d rows", count)
	}
}
