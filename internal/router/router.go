package router

import (
	"github.com/bloomfolio/internal/db"
	"github.com/bloomfolio/internal/handler"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(sessionSecret, uploadDir, uploadURLPath string) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("bloomfolio_session", store))

	// 上传文件的静态服务
	r.Static(uploadURLPath, uploadDir)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := handler.NewAPI(db.DB, uploadDir, uploadURLPath)

	// 前台公开接口
	public := r.Group("/api")
	{
		public.GET("/home", api.ShowHome)
		public.GET("/about", api.ShowAboutPage)
		public.GET("/designs", api.ShowDesignsPage)
		public.GET("/projects", api.ShowProjectsPage)

		public.GET("/guestbook", api.ListRecentGuestbookEntries)
		public.POST("/guestbook", api.CreateGuestbookEntry)

		public.GET("/stats/flower", api.GetFlowerCount)
		public.POST("/stats/flower", api.IncrementFlowerCount)
	}

	// 后台管理接口
	admin := r.Group("/api/admin")
	{
		admin.POST("/login", api.Login)
		admin.POST("/logout", api.Logout)
		admin.GET("/session", api.Session)

		// 需要认证的后台路由
		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/summary", api.Summary)

			auth.GET("/basic-info", api.GetBasicInfo)
			auth.PUT("/basic-info", api.UpdateBasicInfo)

			auth.GET("/about-sections", api.ListAboutSections)
			auth.POST("/about-sections", api.CreateAboutSection)
			auth.PUT("/about-sections/:id", api.UpdateAboutSection)
			auth.DELETE("/about-sections/:id", api.DeleteAboutSection)
			auth.PUT("/about-sections/:id/show-in-home", api.ToggleAboutSection)

			auth.GET("/designs", api.ListDesigns)
			auth.POST("/designs", api.CreateDesign)
			auth.PUT("/designs/:id", api.UpdateDesign)
			auth.DELETE("/designs/:id", api.DeleteDesign)
			auth.PUT("/designs/:id/publish", api.ToggleDesignPublished)

			auth.GET("/projects", api.ListProjects)
			auth.POST("/projects", api.CreateProject)
			auth.PUT("/projects/:id", api.UpdateProject)
			auth.DELETE("/projects/:id", api.DeleteProject)
			auth.PUT("/projects/:id/publish", api.ToggleProjectPublished)

			auth.GET("/social-links", api.ListSocialLinks)
			auth.POST("/social-links", api.CreateSocialLink)
			auth.PUT("/social-links/:id", api.UpdateSocialLink)
			auth.DELETE("/social-links/:id", api.DeleteSocialLink)
			auth.PUT("/social-links/:id/active", api.ToggleSocialLinkActive)

			auth.GET("/guestbook", api.ListGuestbookEntries)
			auth.DELETE("/guestbook/:id", api.DeleteGuestbookEntry)

			auth.POST("/uploads/image", api.UploadImage)
			auth.POST("/uploads/file", api.UploadFile)
			auth.DELETE("/uploads", api.DeleteUpload)
		}
	}

	return r
}
