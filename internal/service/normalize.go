package service

import "strings"

// optionalText 将去除首尾空白后的可选文本转换为指针。
// 空字符串返回 nil，从而在数据库中持久化为 NULL 而不是 ""。
func optionalText(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// splitList 将逗号分隔文本拆分为有序列表，丢弃空白片段。
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		items = append(items, trimmed)
	}
	return items
}

// joinList 将列表拼回编辑表单使用的逗号分隔文本。
func joinList(items []string) string {
	return strings.Join(items, ", ")
}
