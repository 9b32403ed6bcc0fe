package handler

import (
	"errors"
	"net/http"

	"github.com/bloomfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type basicInfoRequest struct {
	Name         string `json:"name"`
	Education    string `json:"education"`
	Major        string `json:"major"`
	Experience   string `json:"experience"`
	PhotoURL     string `json:"photo_url"`
	ResumeURL    string `json:"resume_url"`
	PortfolioURL string `json:"portfolio_url"`
}

// GetBasicInfo 返回单行基本信息
func (a *API) GetBasicInfo(c *gin.Context) {
	info, err := a.basicInfo.Get()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "기본 정보 로딩에 실패했습니다.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"basic_info": info})
}

// UpdateBasicInfo 更新单行基本信息
func (a *API) UpdateBasicInfo(c *gin.Context) {
	var payload basicInfoRequest
	if !bindJSON(c, &payload, "기본 정보를 확인해주세요.") {
		return
	}

	info, err := a.basicInfo.Update(service.BasicInfoInput{
		Name:         payload.Name,
		Education:    payload.Education,
		Major:        payload.Major,
		Experience:   payload.Experience,
		PhotoURL:     payload.PhotoURL,
		ResumeURL:    payload.ResumeURL,
		PortfolioURL: payload.PortfolioURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBasicInfoNameMissing):
			respondError(c, http.StatusBadRequest, "이름은 필수입니다.")
		case errors.Is(err, service.ErrBasicInfoNotFound):
			respondError(c, http.StatusNotFound, "기본 정보를 찾을 수 없습니다.")
		default:
			respondError(c, http.StatusInternalServerError, "저장에 실패했습니다.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "기본 정보가 저장되었습니다.", "basic_info": info})
}
