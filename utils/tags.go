package utils

import "strings"

// 兴趣类别和粉丝类型在用户表里以逗号拼接的字符串存储，
// 读写边界上在切片和字符串之间转换。

// JoinTags 标签列表拼接为存储字符串
func JoinTags(tags []string) string {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		cleaned = append(cleaned, tag)
	}
	return strings.Join(cleaned, ",")
}

// SplitTags 存储字符串拆分为标签列表
func SplitTags(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tags = append(tags, part)
	}
	return tags
}
