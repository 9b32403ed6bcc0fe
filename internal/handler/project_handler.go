package handler

import (
	"errors"
	"net/http"

	"github.com/bloomfolio/internal/db"
	"github.com/bloomfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type projectRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url"`
	DetailURL    string `json:"detail_url"`
	DocURL       string `json:"doc_url"`
	TechStack    string `json:"tech_stack"`
	IsPublished  *bool  `json:"is_published"`
	SortOrder    int    `json:"sort_order"`
}

func (r projectRequest) toInput() service.ProjectInput {
	published := true
	if r.IsPublished != nil {
		published = *r.IsPublished
	}
	return service.ProjectInput{
		Title:       r.Title,
		Description: r.Description,
		Thumbnail:   r.ThumbnailURL,
		DetailURL:   r.DetailURL,
		DocURL:      r.DocURL,
		TechStack:   r.TechStack,
		IsPublished: published,
		SortOrder:   r.SortOrder,
	}
}

func projectPayload(item db.Project) gin.H {
	return gin.H{
		"id":              item.ID,
		"title":           item.Title,
		"description":     item.Description,
		"thumbnail_url":   item.ThumbnailURL,
		"detail_url":      item.DetailURL,
		"doc_url":         item.DocURL,
		"tech_stack":      item.TechStack,
		"tech_stack_text": service.TechStackText(item),
		"is_published":    item.IsPublished,
		"sort_order":      item.SortOrder,
	}
}

// ListProjects 返回后台管理用的全部项目
// tech_stack_text 是编辑弹窗使用的逗号分隔形式
func (a *API) ListProjects(c *gin.Context) {
	items, err := a.projects.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "프로젝트 로딩에 실패했습니다.")
		return
	}

	payload := make([]gin.H, 0, len(items))
	for _, item := range items {
		payload = append(payload, projectPayload(item))
	}

	c.JSON(http.StatusOK, gin.H{"projects": payload})
}

// CreateProject 创建新项目
func (a *API) CreateProject(c *gin.Context) {
	var payload projectRequest
	if !bindJSON(c, &payload, "프로젝트 정보를 확인해주세요.") {
		return
	}

	item, err := a.projects.Create(payload.toInput())
	if err != nil {
		handleProjectError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "프로젝트가 추가되었습니다.", "project": projectPayload(*item)})
}

// UpdateProject 更新项目
func (a *API) UpdateProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "잘못된 프로젝트 ID입니다.")
		return
	}

	var payload projectRequest
	if !bindJSON(c, &payload, "프로젝트 정보를 확인해주세요.") {
		return
	}

	item, err := a.projects.Update(id, payload.toInput())
	if err != nil {
		handleProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "프로젝트가 수정되었습니다.", "project": projectPayload(*item)})
}

// DeleteProject 删除指定项目
func (a *API) DeleteProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "잘못된 프로젝트 ID입니다.")
		return
	}

	if err := a.projects.Delete(id); err != nil {
		handleProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "프로젝트가 삭제되었습니다."})
}

// ToggleProjectPublished 单字段更新公开状态
func (a *API) ToggleProjectPublished(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "잘못된 프로젝트 ID입니다.")
		return
	}

	var payload publishToggleRequest
	if !bindJSON(c, &payload, "요청 형식이 올바르지 않습니다.") {
		return
	}

	if err := a.projects.SetPublished(id, payload.IsPublished); err != nil {
		handleProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "공개 상태가 변경되었습니다."})
}

func handleProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProjectNotFound):
		respondError(c, http.StatusNotFound, "프로젝트를 찾을 수 없습니다.")
	case errors.Is(err, service.ErrProjectTitleMissing):
		respondError(c, http.StatusBadRequest, "프로젝트 제목은 필수입니다.")
	default:
		respondError(c, http.StatusInternalServerError, "저장에 실패했습니다.")
	}
}
