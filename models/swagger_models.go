package models

// APIResponse 通用API响应
type APIResponse struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message" example:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// RecommendationRequest 推荐请求体
type RecommendationRequest struct {
	UserID  string                 `json:"user_id" example:"user_123"`
	Limit   int                    `json:"limit,omitempty" example:"10"` // 为0时使用配置默认值
	Context *RecommendationContext `json:"context,omitempty"`
}

// SearchRequest 搜索请求体
type SearchRequest struct {
	Query   string         `json:"query" example:"blue summer dress"`
	Filters *SearchFilters `json:"filters,omitempty"`
	Limit   int            `json:"limit,omitempty" example:"20"` // 为0时使用配置默认值
}

// PricingRequest 定价请求体
type PricingRequest struct {
	ProductID  string      `json:"product_id" example:"prod_456"`
	MarketData *MarketData `json:"market_data,omitempty"`
}

// ContentRequest 内容生成请求体
type ContentRequest struct {
	ProductName string   `json:"product_name" example:"Premium Coffee Maker"`
	Keywords    []string `json:"keywords" example:"coffee,kitchen"`
	ContentType string   `json:"content_type,omitempty" example:"description"` // description / title / keywords
}

// SentimentRequest 情感分析请求体
type SentimentRequest struct {
	Text  string   `json:"text,omitempty" example:"This product is amazing!"`
	Texts []string `json:"texts,omitempty"` // 批量分析时使用，返回聚合统计
}

// InventoryRequest 库存预测请求体
type InventoryRequest struct {
	ProductID string `json:"product_id" example:"prod_456"`
	Timeframe string `json:"timeframe,omitempty" example:"30d"`
}

// CustomerQueryRequest 客服问答请求体
type CustomerQueryRequest struct {
	Query   string          `json:"query" example:"How do I return an item?"`
	Context *SupportContext `json:"context,omitempty"`
}

// PurchaseRequest 购买记录上报请求体
type PurchaseRequest struct {
	UserID    string  `json:"user_id" example:"user_123"`
	ProductID string  `json:"product_id" example:"prod_456"`
	Quantity  int     `json:"quantity" example:"1"`
	Price     float64 `json:"price" example:"59.9"`
}

// CartRequest 放弃购物车处理请求体
type CartRequest struct {
	UserID string     `json:"user_id" example:"user_123"`
	Items  []CartItem `json:"items"`
}
