package service

import (
	"errors"
	"testing"
	"time"

	"github.com/bloomfolio/internal/db"
)

func TestGuestbookServiceCreateValidation(t *testing.T) {
	cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewGuestbookService(db.DB)
	if _, err := svc.Create(GuestbookInput{AuthorName: "   ", Message: "안녕하세요"}); !errors.Is(err, ErrGuestbookInvalidInput) {
		t.Fatalf("expected ErrGuestbookInvalidInput, got %v", err)
	}
	if _, err := svc.Create(GuestbookInput{AuthorName: "방문자", Message: ""}); !errors.Is(err, ErrGuestbookInvalidInput) {
		t.Fatalf("expected ErrGuestbookInvalidInput, got %v", err)
	}

	var count int64
	db.DB.Model(&db.GuestbookEntry{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected rejected writes to persist nothing, found %d rows", count)
	}
}

func TestGuestbookServiceCreateNormalizesOptionalFields(t *testing.T) {
	cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewGuestbookService(db.DB)
	entry, err := svc.Create(GuestbookInput{AuthorName: " 방문자 ", Message: " 잘 보고 갑니다 ", Hobby: "   ", SNSAccount: " @visitor "})
	if err != nil {
		t.Fatalf("create entry failed: %v", err)
	}

	if entry.AuthorName != "방문자" || entry.Message != "잘 보고 갑니다" {
		t.Fatalf("expected trimmed required fields, got %q / %q", entry.AuthorName, entry.Message)
	}
	if entry.Hobby != nil {
		t.Fatalf("expected whitespace-only hobby to persist as nil")
	}
	if entry.SNSAccount == nil || *entry.SNSAccount != "@visitor" {
		t.Fatalf("expected trimmed sns account, got %v", entry.SNSAccount)
	}
}

func TestGuestbookServiceListRecent(t *testing.T) {
	cleanup := setupServiceTestDB(t)
	defer cleanup()

	// 直接插入以控制创建时间
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		entry := db.GuestbookEntry{AuthorName: "방문자", Message: "hello"}
		entry.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := db.DB.Create(&entry).Error; err != nil {
			t.Fatalf("failed to seed entry: %v", err)
		}
	}

	svc := NewGuestbookService(db.DB)
	recent, err := svc.ListRecent(10)
	if err != nil {
		t.Fatalf("list recent failed: %v", err)
	}
	if len(recent) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(recent))
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].CreatedAt.After(recent[i-1].CreatedAt) {
			t.Fatalf("expected entries ordered by created_at descending")
		}
	}

	all, err := svc.ListAll()
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(all) != 12 {
		t.Fatalf("expected 12 entries, got %d", len(all))
	}
}

func TestGuestbookServiceDelete(t *testing.T) {
	cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewGuestbookService(db.DB)
	entry, err := svc.Create(GuestbookInput{AuthorName: "방문자", Message: "hello"})
	if err != nil {
		t.Fatalf("create entry failed: %v", err)
	}

	if err := svc.Delete(entry.ID); err != nil {
		t.Fatalf("delete entry failed: %v", err)
	}
	if err := svc.Delete(entry.ID); !errors.Is(err, ErrGuestbookEntryNotFound) {
		t.Fatalf("expected ErrGuestbookEntryNotFound, got %v", err)
	}

	var count int64
	db.DB.Model(&db.GuestbookEntry{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected hard delete, found %d rows", count)
	}
}
