package handler

import (
	"net/http"

	"github.com/bloomfolio/internal/db"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password" binding:"required"`
}

// Login 处理管理员登录请求，校验通过后写入会话
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req, "비밀번호를 입력해주세요.") {
		return
	}

	query := a.db.Model(&db.User{})
	if req.Username != "" {
		query = query.Where("username = ?", req.Username)
	}

	var user db.User
	if err := query.First(&user).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "비밀번호가 올바르지 않습니다.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "비밀번호가 올바르지 않습니다.")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Set("username", user.Username)
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "세션 저장에 실패했습니다.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "로그인되었습니다.", "username": user.Username})
}

// Logout 清除会话并登出
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.JSON(http.StatusOK, gin.H{"message": "로그아웃되었습니다."})
}

// Session 返回当前会话的认证状态，供前端恢复登录态
func (a *API) Session(c *gin.Context) {
	session := sessions.Default(c)
	userID := session.Get("user_id")
	if userID == nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"username":      session.Get("username"),
	})
}

// Summary 返回后台面板的各资源数量
func (a *API) Summary(c *gin.Context) {
	var aboutCount, designCount, projectCount, socialCount, guestbookCount int64
	a.db.Model(&db.AboutSection{}).Count(&aboutCount)
	a.db.Model(&db.Design{}).Count(&designCount)
	a.db.Model(&db.Project{}).Count(&projectCount)
	a.db.Model(&db.SocialLink{}).Count(&socialCount)
	a.db.Model(&db.GuestbookEntry{}).Count(&guestbookCount)

	c.JSON(http.StatusOK, gin.H{
		"about_sections": aboutCount,
		"designs":        designCount,
		"projects":       projectCount,
		"social_links":   socialCount,
		"guestbook":      guestbookCount,
	})
}

// AuthRequired 是一个简单的认证中间件
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get("user_id")
		if userID == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "로그인이 필요합니다."})
			return
		}
		c.Next()
	}
}
