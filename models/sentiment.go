package models

// 情感标签
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// SentimentResult 单条文本的情感分析结果
type SentimentResult struct {
	Text       string  `json:"text"`
	Score      float64 `json:"score"`      // 归一化情感分数，0-1，0.5为中性
	Label      string  `json:"label"`      // positive / neutral / negative
	Confidence float64 `json:"confidence"` // 置信度，0-1
}

// SentimentSummary 一批评论的聚合情感统计
type SentimentSummary struct {
	AverageScore float64        `json:"average_sentiment"`
	Total        int            `json:"total_reviews"`
	Distribution map[string]int `json:"sentiment_distribution"` // 各标签的数量
}
