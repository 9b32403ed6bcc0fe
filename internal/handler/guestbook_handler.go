package handler

import (
	"errors"
	"net/http"

	"github.com/bloomfolio/internal/service"
	"github.com/gin-gonic/gin"
)

const guestbookRecentLimit = 10

type guestbookRequest struct {
	AuthorName string `json:"author_name"`
	Message    string `json:"message"`
	Hobby      string `json:"hobby"`
	SNSAccount string `json:"sns_account"`
}

// ListGuestbookEntries 返回后台管理用的全部留言
func (a *API) ListGuestbookEntries(c *gin.Context) {
	items, err := a.guestbook.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "방명록 로딩에 실패했습니다.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": items})
}

// ListRecentGuestbookEntries 返回前台展示的最近留言
func (a *API) ListRecentGuestbookEntries(c *gin.Context) {
	items, err := a.guestbook.ListRecent(guestbookRecentLimit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "방명록 로딩에 실패했습니다.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": items})
}

// CreateGuestbookEntry 处理访客留言提交
func (a *API) CreateGuestbookEntry(c *gin.Context) {
	var payload guestbookRequest
	if !bindJSON(c, &payload, "이름과 메시지를 입력해주세요.") {
		return
	}

	entry, err := a.guestbook.Create(service.GuestbookInput{
		AuthorName: payload.AuthorName,
		Message:    payload.Message,
		Hobby:      payload.Hobby,
		SNSAccount: payload.SNSAccount,
	})
	if err != nil {
		if errors.Is(err, service.ErrGuestbookInvalidInput) {
			respondError(c, http.StatusBadRequest, "이름과 메시지는 필수입니다.")
			return
		}
		respondError(c, http.StatusInternalServerError, "등록에 실패했습니다.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "방명록이 등록되었습니다.", "entry": entry})
}

// DeleteGuestbookEntry 删除指定留言（仅后台）
func (a *API) DeleteGuestbookEntry(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "잘못된 방명록 ID입니다.")
		return
	}

	if err := a.guestbook.Delete(id); err != nil {
		if errors.Is(err, service.ErrGuestbookEntryNotFound) {
			respondError(c, http.StatusNotFound, "방명록을 찾을 수 없습니다.")
			return
		}
		respondError(c, http.StatusInternalServerError, "삭제에 실패했습니다.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "방명록이 삭제되었습니다."})
}
