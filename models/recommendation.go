package models

// RecommendationItem 单条推荐结果
type RecommendationItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Score     float64 `json:"score"` // 用户向量与商品向量的余弦相似度
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url,omitempty"`
	Category  string  `json:"category,omitempty"`
}

// RecommendationContext 推荐请求的上下文信息，如当前页面、当前搜索词
type RecommendationContext struct {
	Page     string `json:"page,omitempty"`
	Query    string `json:"query,omitempty"`
	Category string `json:"category,omitempty"`
}
