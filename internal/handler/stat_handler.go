package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetFlowerCount 返回关于页的送花计数
func (a *API) GetFlowerCount(c *gin.Context) {
	count, err := a.stats.GetFlowerCount()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "카운트 로딩에 실패했습니다.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"flower_count": count})
}

// IncrementFlowerCount 递增送花计数并返回新值
func (a *API) IncrementFlowerCount(c *gin.Context) {
	count, err := a.stats.IncrementFlowerCount()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "카운트 갱신에 실패했습니다.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"flower_count": count})
}
