package services

import (
	"context"
	"testing"

	"ai_ecommerce_assistant/models"
)

func newTestSearch(stores *Stores) *SmartSearch {
	cfg := testConfig()
	return NewSmartSearch(cfg, NewEmbeddingService(cfg), stores.Products, stores.Embeddings)
}

func TestSearchExactMatchRanksFirst(t *testing.T) {
	stores := testStores()
	seedProduct(stores, "p1", "blue summer dress", "", "clothing", 49.9, 10)
	seedProduct(stores, "p2", "leather office chair", "", "furniture", 199, 5)
	seedProduct(stores, "p3", "wireless gaming mouse", "", "electronics", 29, 30)

	s := newTestSearch(stores)
	results, err := s.SearchProducts(context.Background(), "blue summer dress", nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) == 0 {
		t.Fatal("结果不应为空")
	}
	if results[0].ProductID != "p1" {
		t.Errorf("完全匹配的商品应排第一, got %s", results[0].ProductID)
	}
	if results[0].Score < 0.99 {
		t.Errorf("完全匹配分数 = %.4f, want ≈1", results[0].Score)
	}
}

func TestSearchPriceFilter(t *testing.T) {
	stores := testStores()
	seedProduct(stores, "p1", "blue dress", "", "clothing", 49.9, 10)
	seedProduct(stores, "p2", "blue coat", "", "clothing", 299, 10)

	s := newTestSearch(stores)
	results, err := s.SearchProducts(context.Background(), "blue", &models.SearchFilters{MaxPrice: 100}, 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range results {
		if r.ProductID == "p2" {
			t.Error("超出价格区间的商品不应出现在结果中")
		}
	}
}

func TestSearchCategoryFilter(t *testing.T) {
	stores := testStores()
	seedProduct(stores, "p1", "blue dress", "", "clothing", 49.9, 10)
	seedProduct(stores, "p2", "blue mug", "", "kitchen", 9.9, 10)

	s := newTestSearch(stores)
	results, err := s.SearchProducts(context.Background(), "blue", &models.SearchFilters{Category: "kitchen"}, 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range results {
		if r.Category != "kitchen" {
			t.Errorf("品类过滤失效: %s", r.Category)
		}
	}
}

func TestSearchTagFilter(t *testing.T) {
	stores := testStores()
	seedProduct(stores, "p1", "blue dress", "", "clothing", 49.9, 10, "summer")
	seedProduct(stores, "p2", "blue coat", "", "clothing", 99, 10, "winter")

	s := newTestSearch(stores)
	results, err := s.SearchProducts(context.Background(), "blue", &models.SearchFilters{Tags: []string{"summer"}}, 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range results {
		if r.ProductID != "p1" {
			t.Errorf("标签过滤失效: %s", r.ProductID)
		}
	}
}

func TestSearchMinScoreFiltersResults(t *testing.T) {
	stores := testStores()
	seedProduct(stores, "p1", "wireless gaming mouse", "", "electronics", 29, 30)

	cfg := testConfig()
	cfg.Search.MinScore = 0.99
	s := NewSmartSearch(cfg, NewEmbeddingService(cfg), stores.Products, stores.Embeddings)

	// 只命中一个词，分数远达不到阈值
	results, err := s.SearchProducts(context.Background(), "waterproof hiking boots", nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("低于阈值的结果应被过滤, got %d", len(results))
	}
}

func TestSearchLimit(t *testing.T) {
	stores := testStores()
	seedProduct(stores, "p1", "blue dress one", "", "clothing", 10, 1)
	seedProduct(stores, "p2", "blue dress two", "", "clothing", 20, 1)
	seedProduct(stores, "p3", "blue dress three", "", "clothing", 30, 1)

	s := newTestSearch(stores)
	results, err := s.SearchProducts(context.Background(), "blue dress", nil, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) > 2 {
		t.Errorf("结果数 = %d, 超过limit", len(results))
	}
}
