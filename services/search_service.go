package services

import (
	"context"
	"sort"

	"ai_ecommerce_assistant/config"
	"ai_ecommerce_assistant/logger"
	"ai_ecommerce_assistant/models"
	"ai_ecommerce_assistant/repository"
	"ai_ecommerce_assistant/utils"
)

// 语义分与词面分的加权比例
const (
	semanticWeight = 0.8
	keywordWeight  = 0.2
)

// SmartSearch 语义商品搜索
// 搜索分数 = 0.8*查询向量与商品向量的余弦相似度 + 0.2*查询词元命中率
type SmartSearch struct {
	cfg        *config.Config
	embedder   *EmbeddingService
	products   *repository.ProductRepo
	embeddings *repository.EmbeddingRepo
}

func NewSmartSearch(
	cfg *config.Config,
	embedder *EmbeddingService,
	products *repository.ProductRepo,
	embeddings *repository.EmbeddingRepo,
) *SmartSearch {
	return &SmartSearch{
		cfg:        cfg,
		embedder:   embedder,
		products:   products,
		embeddings: embeddings,
	}
}

// SearchProducts 搜索商品
// limit为0时使用配置的max_results，低于min_score的结果会被过滤
func (s *SmartSearch) SearchProducts(ctx context.Context, query string, filters *models.SearchFilters, limit int) ([]models.SearchResult, error) {
	if limit <= 0 {
		limit = s.cfg.Search.MaxResults
	}

	queryVec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}
	queryTokens := utils.Tokenize(query)

	category := ""
	if filters != nil {
		category = filters.Category
	}
	candidates := s.products.ListByCategory(category)

	results := make([]models.SearchResult, 0, len(candidates))
	for _, p := range candidates {
		if !matchFilters(p, filters) {
			continue
		}

		vec, err := s.productEmbedding(ctx, p)
		if err != nil {
			logger.Warn("计算商品向量失败，跳过候选商品", "product_id", p.ID, "error", err)
			continue
		}

		score := semanticWeight*CosineSimilarity(queryVec, vec) +
			keywordWeight*keywordOverlap(queryTokens, p)
		if score < s.cfg.Search.MinScore {
			continue
		}

		results = append(results, models.SearchResult{
			ProductID: p.ID,
			Name:      p.Name,
			Score:     score,
			Price:     p.Price,
			Category:  p.Category,
			ImageURL:  p.ImageURL,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ProductID < results[j].ProductID
	})
	if len(results) > limit {
		results = results[:limit]
	}

	logger.Info("搜索完成", "query", query, "count", len(results))
	return results, nil
}

// productEmbedding 获取商品向量，缺失时现场计算并落库
func (s *SmartSearch) productEmbedding(ctx context.Context, p models.Product) ([]float64, error) {
	if vec, err := s.embeddings.GetProductEmbedding(p.ID); err == nil {
		return vec, nil
	}
	vec, err := s.embedder.Embed(ctx, ProductText(p))
	if err != nil {
		return nil, err
	}
	s.embeddings.SaveProductEmbedding(p.ID, vec)
	return vec, nil
}

// matchFilters 检查商品是否满足过滤条件，品类过滤已在候选集阶段处理
func matchFilters(p models.Product, filters *models.SearchFilters) bool {
	if filters == nil {
		return true
	}
	if filters.MinPrice > 0 && p.Price < filters.MinPrice {
		return false
	}
	if filters.MaxPrice > 0 && p.Price > filters.MaxPrice {
		return false
	}
	for _, want := range filters.Tags {
		if utils.IndexOf(p.Tags, want) < 0 {
			return false
		}
	}
	return true
}

// keywordOverlap 查询词元在商品文本中的命中率，0-1
func keywordOverlap(queryTokens []string, p models.Product) float64 {
	if len(queryTokens) == 0 {
		return 0
	}
	productTokens := utils.Tokenize(ProductText(p))
	set := make(map[string]bool, len(productTokens))
	for _, t := range productTokens {
		set[t] = true
	}
	hits := 0
	for _, t := range queryTokens {
		if set[t] {
			hits++
		}
	}
	return float64(hits) / float64(len(queryTokens))
}
