package handler

import (
	"errors"
	"net/http"

	"github.com/bloomfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type designRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
	IsPublished *bool  `json:"is_published"`
	SortOrder   int    `json:"sort_order"`
}

type publishToggleRequest struct {
	IsPublished bool `json:"is_published"`
}

func (r designRequest) toInput() service.DesignInput {
	published := true
	if r.IsPublished != nil {
		published = *r.IsPublished
	}
	return service.DesignInput{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Category:    r.Category,
		IsPublished: published,
		SortOrder:   r.SortOrder,
	}
}

// ListDesigns 返回后台管理用的全部设计作品
func (a *API) ListDesigns(c *gin.Context) {
	items, err := a.designs.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "디자인 로딩에 실패했습니다.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"designs": items})
}

// CreateDesign 创建新设计作品
func (a *API) CreateDesign(c *gin.Context) {
	var payload designRequest
	if !bindJSON(c, &payload, "디자인 정보를 확인해주세요.") {
		return
	}

	item, err := a.designs.Create(payload.toInput())
	if err != nil {
		handleDesignError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "디자인이 추가되었습니다.", "design": item})
}

// UpdateDesign 更新设计作品
func (a *API) UpdateDesign(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "잘못된 디자인 ID입니다.")
		return
	}

	var payload designRequest
	if !bindJSON(c, &payload, "디자인 정보를 확인해주세요.") {
		return
	}

	item, err := a.designs.Update(id, payload.toInput())
	if err != nil {
		handleDesignError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "디자인이 수정되었습니다.", "design": item})
}

// DeleteDesign 删除指定设计作品
func (a *API) DeleteDesign(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "잘못된 디자인 ID입니다.")
		return
	}

	if err := a.designs.Delete(id); err != nil {
		handleDesignError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "디자인이 삭제되었습니다."})
}

// ToggleDesignPublished 单字段更新公开状态
func (a *API) ToggleDesignPublished(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "잘못된 디자인 ID입니다.")
		return
	}

	var payload publishToggleRequest
	if !bindJSON(c, &payload, "요청 형식이 올바르지 않습니다.") {
		return
	}

	if err := a.designs.SetPublished(id, payload.IsPublished); err != nil {
		handleDesignError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "공개 상태가 변경되었습니다."})
}

func handleDesignError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDesignNotFound):
		respondError(c, http.StatusNotFound, "디자인을 찾을 수 없습니다.")
	case errors.Is(err, service.ErrDesignTitleMissing):
		respondError(c, http.StatusBadRequest, "디자인 제목은 필수입니다.")
	default:
		respondError(c, http.StatusInternalServerError, "저장에 실패했습니다.")
	}
}
