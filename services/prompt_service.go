package services

import (
	"fmt"
	"strings"

	"ai_ecommerce_assistant/config"
	"ai_ecommerce_assistant/models"
	"ai_ecommerce_assistant/utils"
)

// buildContentPrompt 构建商品内容生成提示词
func buildContentPrompt(productName string, keywords []string, contentType string) string {
	keywordPart := ""
	if len(keywords) > 0 {
		keywordPart = fmt.Sprintf("相关关键词：%s\n", strings.Join(keywords, "、"))
	}

	switch contentType {
	case models.ContentTypeTitle:
		return fmt.Sprintf(`请为电商商品"%s"生成一个吸引人的标题。
%s要求：不超过60个字符，突出卖点，只返回标题本身，不要任何解释。`, productName, keywordPart)
	case models.ContentTypeKeywords:
		return fmt.Sprintf(`请为电商商品"%s"生成一组SEO搜索关键词。
%s要求：返回8-12个关键词，用英文逗号分隔，只返回关键词列表。`, productName, keywordPart)
	default:
		return fmt.Sprintf(`请为电商商品"%s"撰写一段商品描述。
%s要求：100-150字，语气亲切专业，突出商品价值和使用场景，只返回描述文本。`, productName, keywordPart)
	}
}

// buildSupportPrompt 构建客服回答提示词，附带检索到的知识库条目作为依据
func buildSupportPrompt(cfg *config.Config, query string, entries []models.FAQEntry, sctx *models.SupportContext) string {
	var sb strings.Builder
	sb.WriteString("你是电商平台的客服助手，请根据下面的知识库条目回答客户问题。\n")
	sb.WriteString("如果知识库中没有相关内容，请如实说明并建议联系人工客服。\n\n")

	if sctx != nil && sctx.CustomerName != "" {
		sb.WriteString(fmt.Sprintf("客户信息：%s，历史订单%d笔，累计消费%.2f元\n\n",
			sctx.CustomerName, sctx.OrderCount, sctx.TotalSpent))
	}

	sb.WriteString("知识库条目：\n")
	for i, e := range entries {
		sb.WriteString(fmt.Sprintf("%d. 问：%s\n   答：%s\n", i+1, e.Question, e.Answer))
	}

	sb.WriteString(fmt.Sprintf("\n客户问题：%s\n只返回回答本身。", query))

	prompt := sb.String()

	// 控制提示词长度，超长时截断知识库部分
	maxTokens := cfg.LLM.MaxTokenLength
	if maxTokens > 0 && utils.CalculateTokens(prompt) > maxTokens {
		prompt = utils.Truncate(prompt, maxTokens*4)
	}

	return prompt
}

// buildRecoveryPrompt 构建购物车挽回文案提示词
func buildRecoveryPrompt(plan models.RecoveryPlan, itemNames []string) string {
	discountPart := "不提供折扣"
	if plan.DiscountPercent > 0 {
		discountPart = fmt.Sprintf("可以提供%.0f%%的折扣", plan.DiscountPercent)
	}
	return fmt.Sprintf(`请为电商平台撰写一条购物车挽回消息。
客户购物车中的商品：%s，合计%.2f元。%s。
要求：60字以内，语气友好不推销，只返回消息文本。`,
		strings.Join(itemNames, "、"), plan.CartTotal, discountPart)
}
