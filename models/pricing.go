package models

// MarketData 定价决策的市场输入数据
type MarketData struct {
	CompetitorPrices []float64 `json:"competitor_prices,omitempty"`
	DemandLevel      string    `json:"demand_level,omitempty"` // high / medium / low
	SeasonFactor     float64   `json:"season_factor,omitempty"`
}

// PriceSuggestion 动态定价建议
type PriceSuggestion struct {
	ProductID      string   `json:"product_id"`
	CurrentPrice   float64  `json:"current_price"`
	SuggestedPrice float64  `json:"suggested_price"`
	MinPrice       float64  `json:"min_price"`
	MaxPrice       float64  `json:"max_price"`
	Confidence     float64  `json:"confidence"`
	Rationale      []string `json:"rationale"` // 调价理由，按影响程度排序
}
