package handler

import (
	"errors"
	"net/http"

	"github.com/bloomfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type aboutSectionRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	ShowInHome bool   `json:"show_in_home"`
	SortOrder  int    `json:"sort_order"`
}

type aboutSectionToggleRequest struct {
	ShowInHome bool `json:"show_in_home"`
}

func (r aboutSectionRequest) toInput() service.AboutSectionInput {
	return service.AboutSectionInput{
		Title:      r.Title,
		Content:    r.Content,
		ShowInHome: r.ShowInHome,
		SortOrder:  r.SortOrder,
	}
}

// ListAboutSections 返回后台管理用的关于我区块列表
func (a *API) ListAboutSections(c *gin.Context) {
	items, err := a.abouts.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "소개 섹션 로딩에 실패했습니다.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"sections": items})
}

// CreateAboutSection 创建新的关于我区块
func (a *API) CreateAboutSection(c *gin.Context) {
	var payload aboutSectionRequest
	if !bindJSON(c, &payload, "섹션 정보를 확인해주세요.") {
		return
	}

	item, err := a.abouts.Create(payload.toInput())
	if err != nil {
		handleAboutSectionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "섹션이 추가되었습니다.", "section": item})
}

// UpdateAboutSection 更新关于我区块
func (a *API) UpdateAboutSection(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "잘못된 섹션 ID입니다.")
		return
	}

	var payload aboutSectionRequest
	if !bindJSON(c, &payload, "섹션 정보를 확인해주세요.") {
		return
	}

	item, err := a.abouts.Update(id, payload.toInput())
	if err != nil {
		handleAboutSectionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "섹션이 수정되었습니다.", "section": item})
}

// DeleteAboutSection 删除指定关于我区块
func (a *API) DeleteAboutSection(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "잘못된 섹션 ID입니다.")
		return
	}

	if err := a.abouts.Delete(id); err != nil {
		handleAboutSectionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "섹션이 삭제되었습니다."})
}

// ToggleAboutSection 单字段更新首页展示开关
func (a *API) ToggleAboutSection(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "잘못된 섹션 ID입니다.")
		return
	}

	var payload aboutSectionToggleRequest
	if !bindJSON(c, &payload, "요청 형식이 올바르지 않습니다.") {
		return
	}

	if err := a.abouts.SetShowInHome(id, payload.ShowInHome); err != nil {
		handleAboutSectionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "상태가 변경되었습니다."})
}

func handleAboutSectionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAboutSectionNotFound):
		respondError(c, http.StatusNotFound, "섹션을 찾을 수 없습니다.")
	case errors.Is(err, service.ErrAboutSectionTitleMissing):
		respondError(c, http.StatusBadRequest, "섹션 제목은 필수입니다.")
	default:
		respondError(c, http.StatusInternalServerError, "저장에 실패했습니다.")
	}
}
