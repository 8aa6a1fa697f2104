package utils

import (
	"strings"
	"unicode"
)

// Tokenize 将文本切分为小写词元，数字保留，其余符号作为分隔符
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// DeduplicateSlice 去重字符串切片
func DeduplicateSlice(input []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0)

	for _, val := range input {
		val = strings.TrimSpace(val)
		if val != "" && !seen[val] {
			result = append(result, val)
			seen[val] = true
		}
	}

	return result
}

// CalculateTokens 估算文本的token数量：中文字符2token，英文单词1token
func CalculateTokens(text string) int {
	chinese := 0

	// 计算中文字符数
	for _, r := range text {
		if r >= '一' && r <= '龥' {
			chinese++
		}
	}

	// 计算英文单词数
	english := len(strings.FieldsFunc(text, func(r rune) bool {
		return !(r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z')
	}))

	return chinese*2 + english
}

// Truncate 按字节数截断文本，尽量在单词边界处断开
func Truncate(s string, limit int) string {
	if s == "" || limit <= 0 || len(s) <= limit {
		return s
	}
	cut := s[:limit]
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return cut + "..."
}

// Min 返回两个整数中的较小值
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// IndexOf 返回元素在切片中的索引，如果不存在则返回-1
func IndexOf(slice []string, element string) int {
	for i, e := range slice {
		if e == element {
			return i
		}
	}
	return -1
}
