package handler

import (
	"fmt"
	"image"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

const (
	maxImageUploadBytes = 5 * 1024 * 1024
	maxFileUploadBytes  = 20 * 1024 * 1024
)

// 上传目录按用途划分，防止调用方写入任意路径
var uploadFolders = map[string]struct{}{
	"images":    {},
	"designs":   {},
	"projects":  {},
	"documents": {},
	"profile":   {},
}

// 文档上传允许的扩展名
var documentExtensions = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
	".pptx": {},
	".hwp":  {},
}

type uploadDeleteRequest struct {
	URL string `json:"url"`
}

// UploadImage 处理图片上传请求
// 校验在写盘之前完成：仅接受 image/* 且不超过 5MB
func (a *API) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "업로드할 이미지를 찾을 수 없습니다.")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "이미지 파일만 업로드할 수 있습니다.")
		return
	}

	if file.Size > maxImageUploadBytes {
		respondError(c, http.StatusBadRequest, "파일 크기는 5MB 이하여야 합니다.")
		return
	}

	folder := normalizeFolder(c.PostForm("folder"), "images")

	// 尺寸探测：支持 png/jpeg/gif/webp，失败时宽高为 0
	width, height := 0, 0
	if reader, err := file.Open(); err == nil {
		if cfg, _, err := image.DecodeConfig(reader); err == nil {
			width, height = cfg.Width, cfg.Height
		}
		reader.Close()
	}

	fileURL, err := a.saveUpload(c, file, folder)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "업로드에 실패했습니다. 다시 시도해주세요.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":    fileURL,
		"width":  width,
		"height": height,
	})
}

// UploadFile 处理文档上传请求
// 仅接受固定扩展名集合且不超过 20MB
func (a *API) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "업로드할 파일을 찾을 수 없습니다.")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := documentExtensions[ext]; !ok {
		respondError(c, http.StatusBadRequest, "지원하지 않는 파일 형식입니다.")
		return
	}

	if file.Size > maxFileUploadBytes {
		respondError(c, http.StatusBadRequest, "파일 크기는 20MB 이하여야 합니다.")
		return
	}

	folder := normalizeFolder(c.PostForm("folder"), "documents")

	fileURL, err := a.saveUpload(c, file, folder)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "업로드에 실패했습니다. 다시 시도해주세요.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": fileURL})
}

// DeleteUpload 按公开 URL 删除上传文件
// URL 前缀不匹配时视为外部链接，跳过删除；删除失败只记录日志
func (a *API) DeleteUpload(c *gin.Context) {
	var payload uploadDeleteRequest
	if !bindJSON(c, &payload, "요청 형식이 올바르지 않습니다.") {
		return
	}

	objectPath, ok := a.extractUploadPath(payload.URL)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"message": "외부 링크는 삭제를 건너뜁니다.", "removed": false})
		return
	}

	if err := os.Remove(filepath.Join(a.uploadDir, objectPath)); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to remove upload %s: %v", objectPath, err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "파일이 삭제되었습니다.", "removed": true})
}

// saveUpload 以 {folder}/{时间戳}-{短随机串}{扩展名} 命名保存文件并返回公开 URL
func (a *API) saveUpload(c *gin.Context, file *multipart.FileHeader, folder string) (string, error) {
	targetDir := filepath.Join(a.uploadDir, folder)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	token := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	newFilename := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), token, ext)

	if err := c.SaveUploadedFile(file, filepath.Join(targetDir, newFilename)); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(a.uploadURL, "/"), folder, newFilename), nil
}

// extractUploadPath 通过剥离已知 URL 前缀还原存储路径
func (a *API) extractUploadPath(rawURL string) (string, bool) {
	marker := strings.TrimRight(a.uploadURL, "/") + "/"
	idx := strings.Index(rawURL, marker)
	if idx == -1 {
		return "", false
	}

	objectPath := rawURL[idx+len(marker):]
	objectPath = filepath.Clean("/" + objectPath)[1:]
	if objectPath == "" || objectPath == "." {
		return "", false
	}
	return objectPath, true
}

func normalizeFolder(folder, fallback string) string {
	folder = strings.ToLower(strings.TrimSpace(folder))
	if _, ok := uploadFolders[folder]; !ok {
		return fallback
	}
	return folder
}
