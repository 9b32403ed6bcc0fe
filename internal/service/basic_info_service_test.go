package service

import (
	"errors"
	"testing"

	"github.com/bloomfolio/internal/db"
)

func TestBasicInfoServiceUpdate(t *testing.T) {
	cleanup := setupServiceTestDB(t)
	defer cleanup()

	if err := db.EnsureBasicInfo(); err != nil {
		t.Fatalf("failed to seed basic info: %v", err)
	}

	svc := NewBasicInfoService(db.DB)
	updated, err := svc.Update(BasicInfoInput{
		Name:       "  황지선  ",
		Education:  "상일미디어고등학교 졸업",
		Major:      "   ",
		Experience: "웹디자이너 5년 6개월",
	})
	if err != nil {
		t.Fatalf("update basic info failed: %v", err)
	}

	if updated.Name != "황지선" {
		t.Fatalf("expected trimmed name, got %q", updated.Name)
	}
	if updated.Major != nil {
		t.Fatalf("expected whitespace-only major to persist as nil")
	}
	if updated.Education == nil || *updated.Education != "상일미디어고등학교 졸업" {
		t.Fatalf("expected education to persist, got %v", updated.Education)
	}

	loaded, err := svc.Get()
	if err != nil {
		t.Fatalf("get basic info failed: %v", err)
	}
	if loaded.ID != db.BasicInfoID {
		t.Fatalf("expected singleton id %d, got %d", db.BasicInfoID, loaded.ID)
	}
	if loaded.Name != "황지선" {
		t.Fatalf("expected persisted name, got %q", loaded.Name)
	}
}

func TestBasicInfoServiceRejectsEmptyName(t *testing.T) {
	cleanup := setupServiceTestDB(t)
	defer cleanup()

	if err := db.EnsureBasicInfo(); err != nil {
		t.Fatalf("failed to seed basic info: %v", err)
	}

	svc := NewBasicInfoService(db.DB)
	if _, err := svc.Update(BasicInfoInput{Name: "   "}); !errors.Is(err, ErrBasicInfoNameMissing) {
		t.Fatalf("expected ErrBasicInfoNameMissing, got %v", err)
	}

	loaded, err := svc.Get()
	if err != nil {
		t.Fatalf("get basic info failed: %v", err)
	}
	if loaded.Name != "Portfolio" {
		t.Fatalf("expected seeded name untouched, got %q", loaded.Name)
	}
}

func TestEnsureBasicInfoIsIdempotent(t *testing.T) {
	cleanup := setupServiceTestDB(t)
	defer cleanup()

	if err := db.EnsureBasicInfo(); err != nil {
		t.Fatalf("first ensure failed: %v", err)
	}
	if err := db.EnsureBasicInfo(); err != nil {
		t.Fatalf("second ensure failed: %v", err)
	}

	var count int64
	db.DB.Model(&db.BasicInfo{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected a single basic info row, got %d", count)
	}
}
