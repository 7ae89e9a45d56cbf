package models

import (
	"bufio"
	"encoding/base64"
	"os"
	"strings"

	"fkemo/global"

	"github.com/importcjj/sensitive"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

var sensitiveFilter *sensitive.Filter

// InitSensitiveFilter 初始化敏感词过滤器，词库文件不存在时跳过
func InitSensitiveFilter() {
	filePath := "sensitive_words.txt"

	file, err := os.Open(filePath)
	if err != nil {
		global.Log.Warn("敏感词文件不存在，跳过敏感词过滤", zap.String("path", filePath))
		return
	}
	defer file.Close()

	filter := sensitive.New()
	scanner := bufio.NewScanner(file)

	// 词库按行存储，每行一个Base64编码的敏感词
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		decodedBytes, err := base64.StdEncoding.DecodeString(line)
		if err != nil {
			global.Log.Warn("Base64解码失败，跳过该行",
				zap.String("line", line),
				zap.String("error", err.Error()),
			)
			continue
		}

		decodedStr := strings.TrimSpace(string(decodedBytes))
		if decodedStr == "" {
			continue
		}

		filter.AddWord(decodedStr)
	}

	if err := scanner.Err(); err != nil {
		global.Log.Error("读取敏感词文件出错", zap.String("error", err.Error()))
		return
	}

	sensitiveFilter = filter
	global.Log.Info("敏感词过滤器初始化成功", zap.String("method", "InitSensitiveFilter"), zap.String("path", "models/filter.go"))
}

// FilterContent 过滤用户发布的文本内容
func FilterContent(content string) string {
	// 清理HTML
	content = bluemonday.UGCPolicy().Sanitize(content)
	// 过滤敏感词
	if sensitiveFilter != nil {
		content = sensitiveFilter.Replace(content, '*')
	}
	return content
}
