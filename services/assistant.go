package services

import (
	"context"
	"fmt"
	"time"

	"ai_ecommerce_assistant/config"
	"ai_ecommerce_assistant/logger"
	"ai_ecommerce_assistant/models"
	"ai_ecommerce_assistant/repository"
)

// Stores 聚合所有内存存储，便于一次性注入
type Stores struct {
	Products   *repository.ProductRepo
	Purchases  *repository.PurchaseRepo
	Embeddings *repository.EmbeddingRepo
	RecCache   *repository.RecommendationCache
	Carts      *repository.CartRepo
	Sales      *repository.SalesRepo
	FAQs       *repository.FAQRepo
}

func NewStores() *Stores {
	return &Stores{
		Products:   repository.NewProductRepo(),
		Purchases:  repository.NewPurchaseRepo(),
		Embeddings: repository.NewEmbeddingRepo(),
		RecCache:   repository.NewRecommendationCache(),
		Carts:      repository.NewCartRepo(),
		Sales:      repository.NewSalesRepo(),
		FAQs:       repository.NewFAQRepo(),
	}
}

// Assistant 电商 AI 助手门面，按功能开关装配各子服务。
// 关闭的功能对应方法返回 ErrFeatureDisabled。
type Assistant struct {
	cfg      *config.Config
	stores   *Stores
	embedder *EmbeddingService
	llm      *LLMClient

	recommendations RecommendationService
	search          SearchService
	pricing         PricingService
	content         ContentService
	sentiment       SentimentService
	inventory       InventoryService
	support         SupportService
	cart            CartService
}

func NewAssistant(cfg *config.Config, stores *Stores) *Assistant {
	embedder := NewEmbeddingService(cfg)
	llm := NewLLMClient(cfg)

	a := &Assistant{
		cfg:      cfg,
		stores:   stores,
		embedder: embedder,
		llm:      llm,
	}

	// 购物车挽回允许在推荐关闭时运行，此时挽回方案不带推荐商品
	var engine *RecommendationEngine
	if cfg.IsFeatureEnabled(config.FeatureRecommendations) {
		engine = NewRecommendationEngine(cfg, embedder, stores.Products, stores.Purchases, stores.Embeddings, stores.RecCache)
		a.recommendations = engine
	}
	if cfg.IsFeatureEnabled(config.FeatureSmartSearch) {
		a.search = NewSmartSearch(cfg, embedder, stores.Products, stores.Embeddings)
	}
	if cfg.IsFeatureEnabled(config.FeatureDynamicPricing) {
		a.pricing = NewDynamicPricing(cfg, stores.Products)
	}
	if cfg.IsFeatureEnabled(config.FeatureContentGeneration) {
		a.content = NewContentGenerator(cfg, llm)
	}
	if cfg.IsFeatureEnabled(config.FeatureSentimentAnalysis) {
		a.sentiment = NewSentimentAnalyzer(cfg)
	}
	if cfg.IsFeatureEnabled(config.FeatureInventoryForecasting) {
		a.inventory = NewInventoryManager(cfg, stores.Products, stores.Sales)
	}
	if cfg.IsFeatureEnabled(config.FeatureCustomerSupport) {
		a.support = NewCustomerSupport(cfg, stores.FAQs, stores.Embeddings, embedder, llm)
	}
	if cfg.IsFeatureEnabled(config.FeatureCartRecovery) {
		a.cart = NewCartRecovery(cfg, stores.Carts, stores.Products, engine, llm)
	}

	logger.Info("AI助手初始化完成",
		"features", cfg.EnabledFeatures(),
		"embedding_remote", embedder.Remote(),
		"llm_enabled", llm.Enabled())
	return a
}

func featureDisabled(name string) error {
	return fmt.Errorf("%w: %s", ErrFeatureDisabled, name)
}

// Stores 暴露底层存储，处理器做商品/数据录入时使用
func (a *Assistant) Stores() *Stores { return a.stores }

// SyncProduct 录入或更新商品
// 推荐或搜索任一开启时商品向量都会被消费，商品内容变化后必须同步重算
func (a *Assistant) SyncProduct(ctx context.Context, p models.Product) error {
	a.stores.Products.Save(p)
	if a.recommendations != nil {
		return a.recommendations.UpdateProductEmbedding(ctx, p)
	}
	if a.search != nil {
		vec, err := a.embedder.Embed(ctx, ProductText(p))
		if err != nil {
			return err
		}
		a.stores.Embeddings.SaveProductEmbedding(p.ID, vec)
	}
	return nil
}

// SaveFAQ 录入或更新FAQ条目，旧向量一并失效
func (a *Assistant) SaveFAQ(entry models.FAQEntry) {
	a.stores.FAQs.Save(entry)
	a.stores.Embeddings.DeleteFAQEmbedding(entry.ID)
}

// RecordPurchase 记录购买行为：写入购买与销售流水，重算用户画像
func (a *Assistant) RecordPurchase(ctx context.Context, userID string, rec models.PurchaseRecord) error {
	if rec.PurchasedAt.IsZero() {
		rec.PurchasedAt = time.Now()
	}
	a.stores.Purchases.Add(userID, rec)
	a.stores.Sales.Add(models.SalesRecord{
		ProductID: rec.ProductID,
		Quantity:  rec.Quantity,
		Date:      rec.PurchasedAt,
	})
	if a.recommendations != nil {
		if _, err := a.recommendations.UpdateUserProfile(ctx, userID); err != nil {
			return err
		}
	}
	return nil
}

func (a *Assistant) GetRecommendations(ctx context.Context, userID string, limit int, rctx *models.RecommendationContext) ([]models.RecommendationItem, error) {
	if a.recommendations == nil {
		return nil, featureDisabled(config.FeatureRecommendations)
	}
	return a.recommendations.GetRecommendations(ctx, userID, limit, rctx)
}

func (a *Assistant) SearchProducts(ctx context.Context, query string, filters *models.SearchFilters, limit int) ([]models.SearchResult, error) {
	if a.search == nil {
		return nil, featureDisabled(config.FeatureSmartSearch)
	}
	return a.search.SearchProducts(ctx, query, filters, limit)
}

func (a *Assistant) GetPriceSuggestions(productID string, market *models.MarketData) (models.PriceSuggestion, error) {
	if a.pricing == nil {
		return models.PriceSuggestion{}, featureDisabled(config.FeatureDynamicPricing)
	}
	return a.pricing.GetSuggestions(productID, market)
}

func (a *Assistant) GenerateContent(ctx context.Context, productName string, keywords []string, contentType string) (models.GeneratedContent, error) {
	if a.content == nil {
		return models.GeneratedContent{}, featureDisabled(config.FeatureContentGeneration)
	}
	return a.content.Generate(ctx, productName, keywords, contentType)
}

func (a *Assistant) AnalyzeSentiment(text string) (models.SentimentResult, error) {
	if a.sentiment == nil {
		return models.SentimentResult{}, featureDisabled(config.FeatureSentimentAnalysis)
	}
	return a.sentiment.Analyze(text), nil
}

func (a *Assistant) AnalyzeSentimentBatch(texts []string) ([]models.SentimentResult, models.SentimentSummary, error) {
	if a.sentiment == nil {
		return nil, models.SentimentSummary{}, featureDisabled(config.FeatureSentimentAnalysis)
	}
	results, summary := a.sentiment.AnalyzeBatch(texts)
	return results, summary, nil
}

func (a *Assistant) ForecastInventory(productID string, timeframe string) (models.InventoryForecast, error) {
	if a.inventory == nil {
		return models.InventoryForecast{}, featureDisabled(config.FeatureInventoryForecasting)
	}
	return a.inventory.Forecast(productID, timeframe)
}

func (a *Assistant) HandleCustomerQuery(ctx context.Context, query string, sctx *models.SupportContext) (models.SupportAnswer, error) {
	if a.support == nil {
		return models.SupportAnswer{}, featureDisabled(config.FeatureCustomerSupport)
	}
	return a.support.HandleQuery(ctx, query, sctx)
}

func (a *Assistant) ProcessAbandonedCart(ctx context.Context, userID string) (models.RecoveryPlan, error) {
	if a.cart == nil {
		return models.RecoveryPlan{}, featureDisabled(config.FeatureCartRecovery)
	}
	return a.cart.ProcessForUser(ctx, userID)
}

// ScanAbandonedCarts 定时任务入口：扫描闲置购物车并生成挽回方案
func (a *Assistant) ScanAbandonedCarts(ctx context.Context) int {
	if a.cart == nil {
		return 0
	}
	return a.cart.ScanAbandoned(ctx)
}

// RefreshRecommendations 定时任务入口：并发刷新全量用户的推荐缓存
func (a *Assistant) RefreshRecommendations(ctx context.Context) {
	if a.recommendations == nil {
		return
	}
	userIDs := a.stores.Purchases.ListUsers()
	if len(userIDs) == 0 {
		return
	}
	start := time.Now()
	a.recommendations.RefreshAllWithConcurrency(ctx, userIDs, a.cfg.Scheduler.Concurrency)
	logger.Info("推荐刷新完成", "users", len(userIDs), "elapsed", time.Since(start).String())
}
