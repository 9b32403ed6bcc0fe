package handler

import (
	"bytes"
	"net/http"

	"github.com/bloomfolio/internal/db"
	"github.com/bloomfolio/internal/fallback"
	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

const landingPreviewLimit = 4

// renderMarkdown 将区块内容渲染为净化后的 HTML
func renderMarkdown(content *string) string {
	if content == nil {
		return ""
	}

	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(*content), &buf); err != nil {
		return sanitizer.Sanitize(*content)
	}
	return sanitizer.Sanitize(buf.String())
}

func aboutSectionPayload(section db.AboutSection) gin.H {
	return gin.H{
		"id":           section.ID,
		"title":        section.Title,
		"content":      section.Content,
		"content_html": renderMarkdown(section.Content),
		"show_in_home": section.ShowInHome,
		"sort_order":   section.SortOrder,
	}
}

func aboutSectionPayloads(sections []db.AboutSection) []gin.H {
	items := make([]gin.H, 0, len(sections))
	for _, section := range sections {
		items = append(items, aboutSectionPayload(section))
	}
	return items
}

// ShowHome 返回首页所需的全部公开内容
// 任一数据源失败或为空时退回内置兜底数据，访客永远不会看到错误
func (a *API) ShowHome(c *gin.Context) {
	info, err := a.basicInfo.Get()
	if err != nil {
		fb := fallback.BasicInfo()
		info = &fb
	}

	sections, err := a.abouts.ListHome()
	if err != nil || len(sections) == 0 {
		sections = homeFallbackSections()
	}

	designs, err := a.designs.ListPublished(landingPreviewLimit)
	if err != nil {
		designs = nil
	}
	designs = fallback.Rows(designs, fallback.Designs())
	if len(designs) > landingPreviewLimit {
		designs = designs[:landingPreviewLimit]
	}

	projects, err := a.projects.ListPublished(landingPreviewLimit)
	if err != nil {
		projects = nil
	}
	projects = fallback.Rows(projects, fallback.Projects())

	links, err := a.socials.ListActive()
	if err != nil {
		links = nil
	}
	links = fallback.Rows(links, fallback.SocialLinks())

	c.JSON(http.StatusOK, gin.H{
		"basic_info":     info,
		"about_sections": aboutSectionPayloads(sections),
		"designs":        designs,
		"projects":       projectPayloadList(projects),
		"social_links":   links,
	})
}

// ShowAboutPage 返回关于我页面所需的公开内容
func (a *API) ShowAboutPage(c *gin.Context) {
	info, err := a.basicInfo.Get()
	if err != nil {
		fb := fallback.BasicInfo()
		info = &fb
	}

	sections, err := a.abouts.ListAll()
	if err != nil {
		sections = nil
	}
	sections = fallback.Rows(sections, fallback.AboutSections())

	flowerCount, err := a.stats.GetFlowerCount()
	if err != nil {
		flowerCount = 0
	}

	c.JSON(http.StatusOK, gin.H{
		"basic_info":   info,
		"sections":     aboutSectionPayloads(sections),
		"flower_count": flowerCount,
	})
}

// ShowDesignsPage 返回设计画廊页的公开内容与分类列表
func (a *API) ShowDesignsPage(c *gin.Context) {
	designs, err := a.designs.ListPublished(0)
	if err != nil {
		designs = nil
	}
	designs = fallback.Rows(designs, fallback.Designs())

	categories := make([]string, 0)
	seen := map[string]struct{}{}
	for _, design := range designs {
		category := "other"
		if design.Category != nil && *design.Category != "" {
			category = *design.Category
		}
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		categories = append(categories, category)
	}

	c.JSON(http.StatusOK, gin.H{
		"designs":    designs,
		"categories": categories,
	})
}

// ShowProjectsPage 返回项目页的公开内容
func (a *API) ShowProjectsPage(c *gin.Context) {
	projects, err := a.projects.ListPublished(0)
	if err != nil {
		projects = nil
	}
	projects = fallback.Rows(projects, fallback.Projects())

	c.JSON(http.StatusOK, gin.H{"projects": projectPayloadList(projects)})
}

func projectPayloadList(projects []db.Project) []gin.H {
	items := make([]gin.H, 0, len(projects))
	for _, project := range projects {
		items = append(items, gin.H{
			"id":            project.ID,
			"title":         project.Title,
			"description":   project.Description,
			"thumbnail_url": project.ThumbnailURL,
			"detail_url":    project.DetailURL,
			"doc_url":       project.DocURL,
			"tech_stack":    project.TechStack,
			"sort_order":    project.SortOrder,
		})
	}
	return items
}

func homeFallbackSections() []db.AboutSection {
	sections := fallback.AboutSections()
	home := make([]db.AboutSection, 0, len(sections))
	for _, section := range sections {
		if section.ShowInHome {
			home = append(home, section)
		}
	}
	return home
}
