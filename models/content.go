package models

// 内容生成类型
const (
	ContentTypeDescription = "description"
	ContentTypeTitle       = "title"
	ContentTypeKeywords    = "keywords"
)

// GeneratedContent 内容生成结果
type GeneratedContent struct {
	ProductName string `json:"product_name"`
	ContentType string `json:"content_type"`
	Content     string `json:"content"`
	Source      string `json:"source"` // llm / template
}
