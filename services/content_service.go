package services

import (
	"context"
	"fmt"
	"strings"

	"ai_ecommerce_assistant/config"
	"ai_ecommerce_assistant/logger"
	"ai_ecommerce_assistant/models"
	"ai_ecommerce_assistant/utils"
)

// ContentGenerator 商品内容生成器
// 配置了LLM时调用大模型生成，否则使用内置模板，保证接口始终有产出
type ContentGenerator struct {
	cfg *config.Config
	llm *LLMClient
}

func NewContentGenerator(cfg *config.Config, llm *LLMClient) *ContentGenerator {
	return &ContentGenerator{cfg: cfg, llm: llm}
}

// Generate 生成商品文案，contentType支持description/title/keywords，默认description
func (g *ContentGenerator) Generate(ctx context.Context, productName string, keywords []string, contentType string) (models.GeneratedContent, error) {
	if productName == "" {
		return models.GeneratedContent{}, fmt.Errorf("商品名称不能为空")
	}

	switch contentType {
	case "":
		contentType = models.ContentTypeDescription
	case models.ContentTypeDescription, models.ContentTypeTitle, models.ContentTypeKeywords:
	default:
		return models.GeneratedContent{}, fmt.Errorf("不支持的内容类型: %s", contentType)
	}

	keywords = utils.DeduplicateSlice(keywords)

	if g.llm.Enabled() {
		prompt := buildContentPrompt(productName, keywords, contentType)
		text, err := g.llm.Chat(ctx, prompt)
		if err == nil && text != "" {
			return models.GeneratedContent{
				ProductName: productName,
				ContentType: contentType,
				Content:     text,
				Source:      "llm",
			}, nil
		}
		logger.Warn("LLM内容生成失败，使用模板降级方案", "product_name", productName, "error", err)
	}

	return models.GeneratedContent{
		ProductName: productName,
		ContentType: contentType,
		Content:     templateContent(productName, keywords, contentType),
		Source:      "template",
	}, nil
}

// templateContent 模板降级文案
func templateContent(productName string, keywords []string, contentType string) string {
	switch contentType {
	case models.ContentTypeTitle:
		if len(keywords) > 0 {
			return fmt.Sprintf("%s | %s", productName, strings.Join(keywords[:utils.Min(2, len(keywords))], " · "))
		}
		return productName
	case models.ContentTypeKeywords:
		all := append(utils.Tokenize(productName), keywords...)
		return strings.Join(utils.DeduplicateSlice(all), ", ")
	default:
		if len(keywords) > 0 {
			return fmt.Sprintf("%s，为你带来%s的优质体验。精选材质，用心打造，现已上架，欢迎选购。",
				productName, strings.Join(keywords, "、"))
		}
		return fmt.Sprintf("%s，精选材质，用心打造，现已上架，欢迎选购。", productName)
	}
}
