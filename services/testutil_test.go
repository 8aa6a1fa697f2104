package services

import (
	"ai_ecommerce_assistant/config"
	"ai_ecommerce_assistant/models"
)

// testConfig 返回适合单元测试的配置：本地向量、全部功能开启、不过滤低分结果
func testConfig() *config.Config {
	var cfg config.Config

	cfg.Features = map[string]bool{
		config.FeatureRecommendations:      true,
		config.FeatureSmartSearch:          true,
		config.FeatureDynamicPricing:       true,
		config.FeatureCustomerSupport:      true,
		config.FeatureContentGeneration:    true,
		config.FeatureInventoryForecasting: true,
		config.FeatureSentimentAnalysis:    true,
		config.FeatureCartRecovery:         true,
	}

	cfg.Recommendation.EmbeddingSize = 64
	cfg.Recommendation.MaxRecommendations = 10
	cfg.Search.MaxResults = 20
	cfg.Search.MinScore = 0
	cfg.Sentiment.ThresholdPositive = 0.6
	cfg.Sentiment.ThresholdNegative = 0.4
	cfg.Support.MinScore = 0.3
	cfg.Support.TopK = 3
	cfg.Cart.AbandonedAfterMin = 60
	cfg.Cart.MaxSuggestions = 3
	cfg.Scheduler.Concurrency = 4
	cfg.LLM.MaxTokenLength = 4096

	return &cfg
}

func testStores() *Stores {
	return NewStores()
}

func seedProduct(stores *Stores, id, name, description, category string, price float64, stock int, tags ...string) models.Product {
	p := models.Product{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		Tags:        tags,
		Stock:       stock,
	}
	stores.Products.Save(p)
	return p
}

func seedPurchase(stores *Stores, userID string, p models.Product) {
	stores.Purchases.Add(userID, models.PurchaseRecord{
		ProductID: p.ID,
		Quantity:  1,
		Price:     p.Price,
	})
}
