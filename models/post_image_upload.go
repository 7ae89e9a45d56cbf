package models

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"fkemo/global"
	"fkemo/utils"

	"github.com/tencentyun/cos-go-sdk-v5"
	"go.uber.org/zap"
)

// 存储类型常量
const (
	LocalStorage  = "local"  // 本地存储
	OnlineStorage = "online" // 在线存储
)

// WhiteList 定义允许上传的图片格式
var WhiteList = []string{
	"jpg", "png", "jpeg", "ico",
	"tiff", "gif", "svg", "webp",
}

// imageValidate 图片验证
func imageValidate(file *multipart.FileHeader) error {
	if file == nil {
		return fmt.Errorf("文件不能为空")
	}

	// 验证文件格式
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" || !inList(ext[1:], WhiteList) {
		return fmt.Errorf("不支持的文件格式: %s", ext)
	}

	// 验证文件大小
	sizeMB := float64(file.Size) / float64(1024*1024)
	if sizeMB >= float64(global.Config.Upload.Size) {
		return fmt.Errorf("图片大小超过设定,当前大小为:%.2fMB,设定大小为:%dMB",
			sizeMB, global.Config.Upload.Size)
	}
	return nil
}

func inList(item string, list []string) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}

// SavePostImage 保存一张帖子图片，返回未入库的图片记录。
// 同哈希的图片直接复用已有路径，避免重复落盘。
func SavePostImage(file *multipart.FileHeader) (*PostImageModel, error) {
	// 1. 验证图片
	if err := imageValidate(file); err != nil {
		return nil, err
	}

	// 2. 读取文件内容
	byteData, err := readFileContent(file)
	if err != nil {
		return nil, err
	}

	// 3. 计算哈希并检查是否已有同内容图片
	sum := md5.Sum(byteData)
	imageHash := hex.EncodeToString(sum[:])
	var exist PostImageModel
	if err := global.DB.Where("hash = ?", imageHash).First(&exist).Error; err == nil {
		return &PostImageModel{
			ImageURL: exist.ImageURL,
			Name:     file.Filename,
			Size:     file.Size,
			Hash:     imageHash,
		}, nil
	}

	// 4. 雪花ID命名，避免重名覆盖
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("生成文件名失败: %w", err)
	}
	ext := filepath.Ext(file.Filename)
	fileName := fmt.Sprintf("%d%s", id, ext)

	// 5. 优先上传腾讯云，失败则落本地磁盘
	if global.Config.TencentCos.Open {
		cosPath, err := uploadToTencentCOS(fileName, byteData)
		if err == nil {
			return &PostImageModel{
				ImageURL: cosPath,
				Name:     file.Filename,
				Size:     file.Size,
				Hash:     imageHash,
			}, nil
		}
		global.Log.Warn("上传到腾讯云失败，将使用本地存储", zap.String("error", err.Error()))
	}

	localPath, err := writeLocalFile(fileName, byteData)
	if err != nil {
		return nil, err
	}

	return &PostImageModel{
		ImageURL: localPath,
		Name:     file.Filename,
		Size:     file.Size,
		Hash:     imageHash,
	}, nil
}

// readFileContent 读取文件内容
func readFileContent(file *multipart.FileHeader) ([]byte, error) {
	fileObj, err := file.Open()
	if err != nil {
		global.Log.Error("打开文件失败", zap.String("error", err.Error()))
		return nil, fmt.Errorf("无法打开文件")
	}
	defer fileObj.Close()

	return io.ReadAll(fileObj)
}

// writeLocalFile 写入上传目录，返回相对路径
func writeLocalFile(fileName string, data []byte) (string, error) {
	basePath := global.Config.Upload.Path
	if err := os.MkdirAll(basePath, 0755); err != nil {
		global.Log.Error("创建目录失败", zap.String("error", err.Error()))
		return "", fmt.Errorf("创建上传目录失败")
	}

	if err := os.WriteFile(filepath.Join(basePath, fileName), data, 0644); err != nil {
		global.Log.Error("写入文件失败", zap.String("error", err.Error()))
		return "", fmt.Errorf("保存文件失败")
	}

	return filepath.ToSlash(filepath.Join("/", basePath, fileName)), nil
}

// uploadToTencentCOS 上传文件到腾讯云COS
func uploadToTencentCOS(fileName string, data []byte) (string, error) {
	cosConfig := global.Config.TencentCos

	u, _ := url.Parse(cosConfig.BucketURL)
	b := &cos.BaseURL{BucketURL: u}
	client := cos.NewClient(b, &http.Client{
		Transport: &cos.AuthorizationTransport{
			SecretID:  cosConfig.SecretID,
			SecretKey: cosConfig.SecretKey,
		},
	})

	r := bytes.NewReader(data)
	_, err := client.Object.Put(context.Background(), fileName, r, nil)
	if err != nil {
		return "", fmt.Errorf("上传到腾讯云失败: %v", err)
	}

	return fmt.Sprintf("%s/%s", strings.TrimRight(cosConfig.BucketURL, "/"), fileName), nil
}
