package service

import (
	"errors"
	"testing"

	"github.com/bloomfolio/internal/db"
)

func TestProjectServiceTechStackRoundTrip(t *testing.T) {
	cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewProjectService(db.DB)
	created, err := svc.Create(ProjectInput{Title: "Portfolio", TechStack: "React, Vite, MUI", IsPublished: true})
	if err != nil {
		t.Fatalf("create project failed: %v", err)
	}

	if len(created.TechStack) != 3 || created.TechStack[0] != "React" || created.TechStack[1] != "Vite" || created.TechStack[2] != "MUI" {
		t.Fatalf("expected ordered tech stack [React Vite MUI], got %v", created.TechStack)
	}

	// 重新从库中读取，确认 JSON 序列化往返无损
	loaded, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("get project failed: %v", err)
	}
	if got := TechStackText(*loaded); got != "React, Vite, MUI" {
		t.Fatalf("expected form text %q, got %q", "React, Vite, MUI", got)
	}
}

func TestProjectServiceTechStackDropsEmptySegments(t *testing.T) {
	cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewProjectService(db.DB)
	created, err := svc.Create(ProjectInput{Title: "Portfolio", TechStack: " React , ,  , Vite ", IsPublished: true})
	if err != nil {
		t.Fatalf("create project failed: %v", err)
	}

	if len(created.TechStack) != 2 || created.TechStack[0] != "React" || created.TechStack[1] != "Vite" {
		t.Fatalf("expected empty segments dropped, got %v", created.TechStack)
	}
}

func TestProjectServiceUpdateNormalizesOptionalFields(t *testing.T) {
	cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewProjectService(db.DB)
	created, err := svc.Create(ProjectInput{Title: "Portfolio", Description: "old", IsPublished: true})
	if err != nil {
		t.Fatalf("create project failed: %v", err)
	}

	updated, err := svc.Update(created.ID, ProjectInput{Title: "  Portfolio v2  ", Description: "   ", DocURL: " https://docs.example.com ", IsPublished: false})
	if err != nil {
		t.Fatalf("update project failed: %v", err)
	}

	if updated.Title != "Portfolio v2" {
		t.Fatalf("expected trimmed title, got %q", updated.Title)
	}
	if updated.Description != nil {
		t.Fatalf("expected whitespace-only description to persist as nil")
	}
	if updated.DocURL == nil || *updated.DocURL != "https://docs.example.com" {
		t.Fatalf("expected trimmed doc url, got %v", updated.DocURL)
	}
	if updated.IsPublished {
		t.Fatalf("expected publish flag to be updated")
	}
}

func TestProjectServiceRejectsEmptyTitle(t *testing.T) {
	cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewProjectService(db.DB)
	if _, err := svc.Update(1, ProjectInput{Title: "   "}); !errors.Is(err, ErrProjectTitleMissing) {
		t.Fatalf("expected ErrProjectTitleMissing, got %v", err)
	}
	if _, err := svc.Create(ProjectInput{Title: ""}); !errors.Is(err, ErrProjectTitleMissing) {
		t.Fatalf("expected ErrProjectTitleMissing, got %v", err)
	}

	var count int64
	db.DB.Model(&db.Project{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected rejected writes to persist nothing, found %d rows", count)
	}
}
