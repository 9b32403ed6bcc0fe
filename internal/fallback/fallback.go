// Package fallback 内置前台兜底数据。
// 当远端查询失败或结果为空时，公开页面退回到这份静态数据，
// 保证站点在没有任何后台内容时也不会渲染空页面。
package fallback

import "github.com/bloomfolio/internal/db"

// Rows 在主数据源非空时返回主数据源，否则返回兜底数据。
func Rows[T any](primary []T, fallback []T) []T {
	if len(primary) > 0 {
		return primary
	}
	return fallback
}

func text(value string) *string {
	return &value
}

// BasicInfo 返回兜底的基本信息。
func BasicInfo() db.BasicInfo {
	info := db.BasicInfo{
		Name:       "황지선",
		Education:  text("상일미디어고등학교 졸업"),
		Major:      text("디지털만화영상과 출신"),
		Experience: text("2015년부터 활동, 웹디자이너로서 5년 6개월"),
	}
	info.ID = db.BasicInfoID
	return info
}

// AboutSections 返回兜底的关于我区块。
func AboutSections() []db.AboutSection {
	return []db.AboutSection{
		{
			Title:      "My Story",
			Content:    text("어릴 적부터 창의적인 생각을 하는 것을 좋아했다. 광고 디자이너가 꿈일 적도 있었다. 지금은 내 머릿속의 이미지를 현실로 그려내는 것이 좋다."),
			ShowInHome: true,
			SortOrder:  1,
		},
		{
			Title:      "My Philosophy",
			Content:    text("자연만이 주는 아름다움을, 인간만이 주는 따스함을 잊지 않는다."),
			ShowInHome: true,
			SortOrder:  2,
		},
		{
			Title:      "My Favorite",
			Content:    text("디자인만큼 디자인성이 있는 게임이 좋다. 꽃을 좋아한다."),
			ShowInHome: false,
			SortOrder:  3,
		},
	}
}

// Designs 返回兜底的设计作品。
func Designs() []db.Design {
	return []db.Design{
		{
			Title:       "브랜드 로고 리뉴얼",
			Description: text("플라워 샵 브랜드의 로고와 컬러 시스템 리뉴얼 작업."),
			Category:    text("Branding"),
			IsPublished: true,
			SortOrder:   1,
		},
		{
			Title:       "모바일 앱 UI 콘셉트",
			Description: text("꽃 구독 서비스 앱의 온보딩 및 홈 화면 UI 콘셉트 디자인."),
			Category:    text("UI/UX"),
			IsPublished: true,
			SortOrder:   2,
		},
		{
			Title:       "일러스트 포스터",
			Description: text("사계절 꽃을 주제로 한 일러스트 포스터 시리즈."),
			Category:    text("Illustration"),
			IsPublished: true,
			SortOrder:   3,
		},
		{
			Title:       "웹 배너 세트",
			Description: text("시즌 프로모션 웹 배너 및 SNS 카드 세트."),
			Category:    text("Web"),
			IsPublished: true,
			SortOrder:   4,
		},
	}
}

// Projects 返回兜底的项目作品。
func Projects() []db.Project {
	return []db.Project{
		{
			Title:       "포트폴리오 웹사이트",
			Description: text("직접 기획하고 디자인한 개인 포트폴리오 사이트."),
			TechStack:   db.TechStack{"Figma", "HTML", "CSS"},
			IsPublished: true,
			SortOrder:   1,
		},
		{
			Title:       "디자인 시스템 문서",
			Description: text("컴포넌트 단위로 정리한 사내 디자인 시스템 가이드."),
			TechStack:   db.TechStack{"Figma", "Notion"},
			IsPublished: true,
			SortOrder:   2,
		},
	}
}

// SocialLinks 返回兜底的社交链接。
func SocialLinks() []db.SocialLink {
	return []db.SocialLink{
		{Platform: "github", URL: "https://github.com", IsActive: true, SortOrder: 1},
		{Platform: "instagram", URL: "https://instagram.com", IsActive: true, SortOrder: 2},
		{Platform: "email", URL: "mailto:hello@example.com", IsActive: true, SortOrder: 3},
	}
}
