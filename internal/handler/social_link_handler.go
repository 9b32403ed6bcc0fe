package handler

import (
	"errors"
	"net/http"

	"github.com/bloomfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type socialLinkRequest struct {
	Platform  string `json:"platform"`
	URL       string `json:"url"`
	IsActive  *bool  `json:"is_active"`
	SortOrder int    `json:"sort_order"`
}

type activeToggleRequest struct {
	IsActive bool `json:"is_active"`
}

func (r socialLinkRequest) toInput() service.SocialLinkInput {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return service.SocialLinkInput{
		Platform:  r.Platform,
		URL:       r.URL,
		IsActive:  active,
		SortOrder: r.SortOrder,
	}
}

// ListSocialLinks 返回后台管理用的社交链接列表
func (a *API) ListSocialLinks(c *gin.Context) {
	items, err := a.socials.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "소셜 링크 로딩에 실패했습니다.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"links": items})
}

// CreateSocialLink 创建新的社交链接
func (a *API) CreateSocialLink(c *gin.Context) {
	var payload socialLinkRequest
	if !bindJSON(c, &payload, "링크 정보를 확인해주세요.") {
		return
	}

	item, err := a.socials.Create(payload.toInput())
	if err != nil {
		handleSocialLinkError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "링크가 추가되었습니다.", "link": item})
}

// UpdateSocialLink 更新社交链接
func (a *API) UpdateSocialLink(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "잘못된 링크 ID입니다.")
		return
	}

	var payload socialLinkRequest
	if !bindJSON(c, &payload, "링크 정보를 확인해주세요.") {
		return
	}

	item, err := a.socials.Update(id, payload.toInput())
	if err != nil {
		handleSocialLinkError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "링크가 수정되었습니다.", "link": item})
}

// DeleteSocialLink 删除指定社交链接
func (a *API) DeleteSocialLink(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "잘못된 링크 ID입니다.")
		return
	}

	if err := a.socials.Delete(id); err != nil {
		handleSocialLinkError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "링크가 삭제되었습니다."})
}

// ToggleSocialLinkActive 单字段更新启用开关
func (a *API) ToggleSocialLinkActive(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "잘못된 링크 ID입니다.")
		return
	}

	var payload activeToggleRequest
	if !bindJSON(c, &payload, "요청 형식이 올바르지 않습니다.") {
		return
	}

	if err := a.socials.SetActive(id, payload.IsActive); err != nil {
		handleSocialLinkError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "상태가 변경되었습니다."})
}

func handleSocialLinkError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSocialLinkNotFound):
		respondError(c, http.StatusNotFound, "링크를 찾을 수 없습니다.")
	case errors.Is(err, service.ErrSocialLinkURLMissing):
		respondError(c, http.StatusBadRequest, "URL은 필수입니다.")
	case errors.Is(err, service.ErrSocialLinkPlatformInvalid):
		respondError(c, http.StatusBadRequest, "지원하지 않는 플랫폼입니다.")
	default:
		respondError(c, http.StatusInternalServerError, "저장에 실패했습니다.")
	}
}
