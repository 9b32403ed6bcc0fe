package handler

import (
	"github.com/bloomfolio/internal/service"
	"gorm.io/gorm"
)

// API 聚合各资源服务，供 HTTP 处理器共享
type API struct {
	db        *gorm.DB
	basicInfo *service.BasicInfoService
	abouts    *service.AboutService
	designs   *service.DesignService
	projects  *service.ProjectService
	socials   *service.SocialLinkService
	guestbook *service.GuestbookService
	stats     *service.StatService
	uploadDir string
	uploadURL string
}

// NewAPI 构造处理器集合并初始化依赖的服务
func NewAPI(db *gorm.DB, uploadDir, uploadURL string) *API {
	return &API{
		db:        db,
		basicInfo: service.NewBasicInfoService(db),
		abouts:    service.NewAboutService(db),
		designs:   service.NewDesignService(db),
		projects:  service.NewProjectService(db),
		socials:   service.NewSocialLinkService(db),
		guestbook: service.NewGuestbookService(db),
		stats:     service.NewStatService(db),
		uploadDir: uploadDir,
		uploadURL: uploadURL,
	}
}
