package services

import (
	"context"

	"ai_ecommerce_assistant/models"
)

// RecommendationService 个性化推荐服务接口
type RecommendationService interface {
	// 获取用户的个性化推荐
	GetRecommendations(ctx context.Context, userID string, limit int, rctx *models.RecommendationContext) ([]models.RecommendationItem, error)

	// 商品上架/更新后重算商品向量
	UpdateProductEmbedding(ctx context.Context, p models.Product) error

	// 根据购买历史重算用户画像
	UpdateUserProfile(ctx context.Context, userID string) (models.UserProfile, error)

	// 强制重算画像并刷新推荐
	RefreshUser(ctx context.Context, userID string) ([]models.RecommendationItem, error)

	RefreshAllWithConcurrency(ctx context.Context, userIDs []string, concurrency int)
}

// SearchService 语义搜索服务接口
type SearchService interface {
	SearchProducts(ctx context.Context, query string, filters *models.SearchFilters, limit int) ([]models.SearchResult, error)
}

// PricingService 动态定价服务接口
type PricingService interface {
	GetSuggestions(productID string, market *models.MarketData) (models.PriceSuggestion, error)
}

// ContentService 内容生成服务接口
type ContentService interface {
	Generate(ctx context.Context, productName string, keywords []string, contentType string) (models.GeneratedContent, error)
}

// SentimentService 情感分析服务接口
type SentimentService interface {
	Analyze(text string) models.SentimentResult
	AnalyzeBatch(texts []string) ([]models.SentimentResult, models.SentimentSummary)
}

// InventoryService 库存预测服务接口
type InventoryService interface {
	Forecast(productID string, timeframe string) (models.InventoryForecast, error)
}

// SupportService 智能客服服务接口
type SupportService interface {
	HandleQuery(ctx context.Context, query string, sctx *models.SupportContext) (models.SupportAnswer, error)
}

// CartService 购物车挽回服务接口
type CartService interface {
	// 为指定购物车生成挽回方案
	ProcessAbandonedCart(ctx context.Context, userID string, cart models.Cart) (models.RecoveryPlan, error)

	// 从存储加载用户购物车并生成挽回方案
	ProcessForUser(ctx context.Context, userID string) (models.RecoveryPlan, error)

	// 扫描闲置购物车，定时任务调用
	ScanAbandoned(ctx context.Context) int
}
