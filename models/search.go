package models

// SearchFilters 搜索过滤条件
type SearchFilters struct {
	Category string   `json:"category,omitempty"`
	MinPrice float64  `json:"min_price,omitempty"`
	MaxPrice float64  `json:"max_price,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// SearchResult 单条搜索结果
type SearchResult struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Score     float64 `json:"score"` // 相关性分数，0-1
	Price     float64 `json:"price"`
	Category  string  `json:"category,omitempty"`
	ImageURL  string  `json:"image_url,omitempty"`
}
