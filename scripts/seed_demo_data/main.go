package main

import (
	"fmt"
	"log"

	"github.com/bloomfolio/internal/config"
	"github.com/bloomfolio/internal/db"
	"github.com/bloomfolio/internal/fallback"
)

// 演示数据生成器：把内置兜底内容写入数据库，方便本地预览后台
func main() {
	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	fmt.Println("开始生成演示数据...")

	if err := db.EnsureUser("admin", "admin123"); err != nil {
		log.Fatal("创建管理员失败:", err)
	}

	seedBasicInfo()
	seedAboutSections()
	seedDesigns()
	seedProjects()
	seedSocialLinks()
	seedGuestbook()

	fmt.Println("演示数据生成完成！")
	fmt.Println("管理员: admin (密码: admin123)")
}

func seedBasicInfo() {
	info := fallback.BasicInfo()
	if err := db.DB.Save(&info).Error; err != nil {
		log.Fatal("写入基本信息失败:", err)
	}
	fmt.Println("基本信息已写入")
}

func seedAboutSections() {
	var count int64
	db.DB.Model(&db.AboutSection{}).Count(&count)
	if count > 0 {
		fmt.Println("关于我区块已存在，跳过创建")
		return
	}

	sections := fallback.AboutSections()
	for i := range sections {
		if err := db.DB.Create(&sections[i]).Error; err != nil {
			log.Fatal("写入关于我区块失败:", err)
		}
	}
	fmt.Printf("关于我区块已写入 %d 条\n", len(sections))
}

func seedDesigns() {
	var count int64
	db.DB.Model(&db.Design{}).Count(&count)
	if count > 0 {
		fmt.Println("设计作品已存在，跳过创建")
		return
	}

	designs := fallback.Designs()
	for i := range designs {
		if err := db.DB.Create(&designs[i]).Error; err != nil {
			log.Fatal("写入设计作品失败:", err)
		}
	}
	fmt.Printf("设计作品已写入 %d 条\n", len(designs))
}

func seedProjects() {
	var count int64
	db.DB.Model(&db.Project{}).Count(&count)
	if count > 0 {
		fmt.Println("项目已存在，跳过创建")
		return
	}

	projects := fallback.Projects()
	for i := range projects {
		if err := db.DB.Create(&projects[i]).Error; err != nil {
			log.Fatal("写入项目失败:", err)
		}
	}
	fmt.Printf("项目已写入 %d 条\n", len(projects))
}

func seedSocialLinks() {
	var count int64
	db.DB.Model(&db.SocialLink{}).Count(&count)
	if count > 0 {
		fmt.Println("社交链接已存在，跳过创建")
		return
	}

	links := fallback.SocialLinks()
	for i := range links {
		if err := db.DB.Create(&links[i]).Error; err != nil {
			log.Fatal("写入社交链接失败:", err)
		}
	}
	fmt.Printf("社交链接已写入 %d 条\n", len(links))
}

func seedGuestbook() {
	var count int64
	db.DB.Model(&db.GuestbookEntry{}).Count(&count)
	if count > 0 {
		fmt.Println("留言已存在，跳过创建")
		return
	}

	hobby := "산책"
	entries := []db.GuestbookEntry{
		{AuthorName: "첫 방문자", Message: "포트폴리오 잘 보고 갑니다!", Hobby: &hobby},
		{AuthorName: "동료 디자이너", Message: "일러스트 포스터 시리즈가 특히 인상적이에요."},
	}
	for i := range entries {
		if err := db.DB.Create(&entries[i]).Error; err != nil {
			log.Fatal("写入留言失败:", err)
		}
	}
	fmt.Printf("留言已写入 %d 条\n", len(entries))
}
