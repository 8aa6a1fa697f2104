package models

// FAQEntry 客服知识库条目
type FAQEntry struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category,omitempty"`
}

// SupportAnswer 客服问答结果
type SupportAnswer struct {
	Answer     string   `json:"answer"`
	Confidence float64  `json:"confidence"` // 命中知识库的相似度分数
	Sources    []string `json:"sources,omitempty"` // 参考的FAQ条目ID
	Escalate   bool     `json:"escalate"` // 置信度不足时建议转人工
}

// SupportContext 客服问答的上下文信息
type SupportContext struct {
	CustomerName string  `json:"customer_name,omitempty"`
	OrderCount   int     `json:"order_count,omitempty"`
	TotalSpent   float64 `json:"total_spent,omitempty"`
}
