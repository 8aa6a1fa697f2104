package services

import (
	"context"
	"errors"
	"sort"
	"sync"

	"ai_ecommerce_assistant/config"
	"ai_ecommerce_assistant/logger"
	"ai_ecommerce_assistant/models"
	"ai_ecommerce_assistant/repository"
)

// RecommendationEngine 个性化商品推荐引擎
// 用户向量取自购买历史中商品向量的均值，推荐分数为用户向量与候选商品向量的余弦相似度
type RecommendationEngine struct {
	cfg        *config.Config
	embedder   *EmbeddingService
	products   *repository.ProductRepo
	purchases  *repository.PurchaseRepo
	embeddings *repository.EmbeddingRepo
	cache      *repository.RecommendationCache
}

func NewRecommendationEngine(
	cfg *config.Config,
	embedder *EmbeddingService,
	products *repository.ProductRepo,
	purchases *repository.PurchaseRepo,
	embeddings *repository.EmbeddingRepo,
	cache *repository.RecommendationCache,
) *RecommendationEngine {
	return &RecommendationEngine{
		cfg:        cfg,
		embedder:   embedder,
		products:   products,
		purchases:  purchases,
		embeddings: embeddings,
		cache:      cache,
	}
}

// UpdateProductEmbedding 计算并保存商品向量，商品上架或更新时调用
func (e *RecommendationEngine) UpdateProductEmbedding(ctx context.Context, p models.Product) error {
	vec, err := e.embedder.Embed(ctx, ProductText(p))
	if err != nil {
		return err
	}
	e.embeddings.SaveProductEmbedding(p.ID, vec)
	return nil
}

// productEmbedding 获取商品向量，缺失时现场计算并落库
func (e *RecommendationEngine) productEmbedding(ctx context.Context, p models.Product) ([]float64, error) {
	if vec, err := e.embeddings.GetProductEmbedding(p.ID); err == nil {
		return vec, nil
	}
	vec, err := e.embedder.Embed(ctx, ProductText(p))
	if err != nil {
		return nil, err
	}
	e.embeddings.SaveProductEmbedding(p.ID, vec)
	return vec, nil
}

// UpdateUserProfile 根据购买历史重算用户兴趣向量
// 没有任何购买记录时得到零向量，与所有商品的相似度为0
func (e *RecommendationEngine) UpdateUserProfile(ctx context.Context, userID string) (models.UserProfile, error) {
	history := e.purchases.ListByUser(userID)

	dim := e.cfg.Recommendation.EmbeddingSize
	var vectors [][]float64
	for _, rec := range history {
		p, err := e.products.Get(rec.ProductID)
		if err != nil {
			continue // 商品已下架，跳过
		}
		vec, err := e.productEmbedding(ctx, p)
		if err != nil {
			logger.Warn("计算商品向量失败", "product_id", rec.ProductID, "error", err)
			continue
		}
		vectors = append(vectors, vec)
	}

	userVec := MeanVector(vectors, dim)
	e.embeddings.SaveUserProfile(userID, userVec, len(history))

	// 画像更新后旧的推荐缓存不再有效
	e.cache.Invalidate(userID)

	profile, err := e.embeddings.GetUserProfile(userID)
	if err != nil {
		return models.UserProfile{}, err
	}
	logger.Info("用户画像已更新", "user_id", userID, "purchases", len(history))
	return profile, nil
}

// GetRecommendations 获取个性化推荐
// limit为0时使用配置的max_recommendations，已购买的商品不会出现在结果中
func (e *RecommendationEngine) GetRecommendations(ctx context.Context, userID string, limit int, rctx *models.RecommendationContext) ([]models.RecommendationItem, error) {
	if limit <= 0 {
		limit = e.cfg.Recommendation.MaxRecommendations
	}

	// 优先返回缓存结果（上下文过滤的请求不走缓存）
	if rctx == nil {
		if cached, err := e.cache.Get(userID, 0); err == nil && len(cached) > 0 {
			trimmed := cached
			if len(trimmed) > limit {
				trimmed = trimmed[:limit]
			}
			logger.Debug("命中推荐缓存", "user_id", userID, "count", len(trimmed))
			return trimmed, nil
		}
	}

	// 获取或计算用户画像
	profile, err := e.embeddings.GetUserProfile(userID)
	if errors.Is(err, repository.ErrNotFound) {
		profile, err = e.UpdateUserProfile(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	// 候选商品：可按上下文品类过滤，排除已购买商品
	category := ""
	if rctx != nil {
		category = rctx.Category
	}
	candidates := e.products.ListByCategory(category)

	items := make([]models.RecommendationItem, 0, len(candidates))
	for _, p := range candidates {
		if e.purchases.HasPurchased(userID, p.ID) {
			continue
		}
		vec, err := e.productEmbedding(ctx, p)
		if err != nil {
			logger.Warn("计算商品向量失败，跳过候选商品", "product_id", p.ID, "error", err)
			continue
		}
		items = append(items, models.RecommendationItem{
			ProductID: p.ID,
			Name:      p.Name,
			Score:     CosineSimilarity(profile.Embedding, vec),
			Price:     p.Price,
			ImageURL:  p.ImageURL,
			Category:  p.Category,
		})
	}

	// 按相似度排序，分数相同时按商品ID保证结果稳定
	sort.Slice(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return items[i].ProductID < items[j].ProductID
	})
	// 无上下文时缓存完整排名，截断留到每次请求按limit各自处理
	if rctx == nil && len(items) > 0 {
		e.cache.Save(userID, items)
	}
	if len(items) > limit {
		items = items[:limit]
	}

	logger.Info("推荐生成完成", "user_id", userID, "count", len(items))
	return items, nil
}

// RefreshUser 强制重算用户画像并重新生成推荐
func (e *RecommendationEngine) RefreshUser(ctx context.Context, userID string) ([]models.RecommendationItem, error) {
	if _, err := e.UpdateUserProfile(ctx, userID); err != nil {
		return nil, err
	}
	return e.GetRecommendations(ctx, userID, 0, nil)
}

// RefreshAllWithConcurrency 并发刷新一批用户的推荐缓存，调度器定时调用
func (e *RecommendationEngine) RefreshAllWithConcurrency(ctx context.Context, userIDs []string, concurrency int) {
	if concurrency <= 0 {
		concurrency = 10
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, concurrency)

	var mu sync.Mutex
	processed, failed := 0, 0

	for _, uid := range userIDs {
		wg.Add(1)
		semaphore <- struct{}{} // acquire semaphore

		go func(userID string) {
			defer wg.Done()
			defer func() { <-semaphore }() // release semaphore

			_, err := e.RefreshUser(ctx, userID)
			mu.Lock()
			defer mu.Unlock()
			processed++
			if err != nil {
				failed++
				logger.Error("刷新用户推荐失败", "user_id", userID, "error", err)
			}
		}(uid)
	}

	wg.Wait()
	logger.Info("推荐缓存刷新完成", "processed", processed, "failed", failed)
}
