package services

import (
	"context"
	"fmt"
	"testing"

	"ai_ecommerce_assistant/models"
)

func newTestEngine(stores *Stores) *RecommendationEngine {
	cfg := testConfig()
	return NewRecommendationEngine(cfg, NewEmbeddingService(cfg),
		stores.Products, stores.Purchases, stores.Embeddings, stores.RecCache)
}

func TestRecommendationsExcludePurchased(t *testing.T) {
	stores := testStores()
	bought := seedProduct(stores, "p1", "espresso coffee machine", "", "kitchen", 199, 10)
	seedProduct(stores, "p2", "coffee bean grinder", "", "kitchen", 59, 20)
	seedProduct(stores, "p3", "ceramic coffee mug", "", "kitchen", 9.9, 100)
	seedPurchase(stores, "u1", bought)

	e := newTestEngine(stores)
	items, err := e.GetRecommendations(context.Background(), "u1", 0, nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(items) != 2 {
		t.Fatalf("结果数 = %d, want 2", len(items))
	}
	for _, item := range items {
		if item.ProductID == "p1" {
			t.Error("已购买的商品不应出现在推荐中")
		}
	}
}

func TestRecommendationsSortedByScore(t *testing.T) {
	stores := testStores()
	bought := seedProduct(stores, "p1", "espresso coffee machine", "", "kitchen", 199, 10)
	// p2与已购商品词面高度重合，应排在p3之前
	seedProduct(stores, "p2", "espresso coffee machine deluxe", "", "kitchen", 299, 5)
	seedProduct(stores, "p3", "wooden bookshelf", "", "furniture", 89, 15)
	seedPurchase(stores, "u1", bought)

	e := newTestEngine(stores)
	items, err := e.GetRecommendations(context.Background(), "u1", 0, nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(items) != 2 {
		t.Fatalf("结果数 = %d, want 2", len(items))
	}
	if items[0].ProductID != "p2" {
		t.Errorf("相似商品应排第一, got %s", items[0].ProductID)
	}
	if items[0].Score <= items[1].Score {
		t.Errorf("结果未按分数降序: %.4f <= %.4f", items[0].Score, items[1].Score)
	}
}

func TestRecommendationsLimit(t *testing.T) {
	stores := testStores()
	bought := seedProduct(stores, "p1", "espresso coffee machine", "", "kitchen", 199, 10)
	seedProduct(stores, "p2", "coffee grinder", "", "kitchen", 59, 20)
	seedProduct(stores, "p3", "coffee mug", "", "kitchen", 9.9, 100)
	seedProduct(stores, "p4", "coffee filter", "", "kitchen", 4.9, 200)
	seedPurchase(stores, "u1", bought)

	e := newTestEngine(stores)
	items, err := e.GetRecommendations(context.Background(), "u1", 2, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Errorf("limit=2时结果数 = %d", len(items))
	}
}

func TestRecommendationsCacheHonorsLimit(t *testing.T) {
	// 小limit请求先进来不应把缓存截短，影响之后大limit请求的结果数
	stores := testStores()
	bought := seedProduct(stores, "p1", "espresso coffee machine", "", "kitchen", 199, 10)
	seedPurchase(stores, "u1", bought)
	for i := 2; i <= 9; i++ {
		id := fmt.Sprintf("p%d", i)
		seedProduct(stores, id, "coffee accessory "+id, "", "kitchen", float64(10*i), 20)
	}

	e := newTestEngine(stores)
	ctx := context.Background()

	small, err := e.GetRecommendations(ctx, "u1", 2, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(small) != 2 {
		t.Fatalf("limit=2时结果数 = %d", len(small))
	}

	large, err := e.GetRecommendations(ctx, "u1", 8, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(large) != 8 {
		t.Fatalf("limit=8时结果数 = %d, want 8", len(large))
	}

	// 缓存命中时同样按请求limit截断
	again, err := e.GetRecommendations(ctx, "u1", 3, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(again) != 3 {
		t.Errorf("limit=3时结果数 = %d, want 3", len(again))
	}
}

func TestRecommendationsCategoryContext(t *testing.T) {
	stores := testStores()
	bought := seedProduct(stores, "p1", "espresso coffee machine", "", "kitchen", 199, 10)
	seedProduct(stores, "p2", "coffee grinder", "", "kitchen", 59, 20)
	seedProduct(stores, "p3", "office chair", "", "furniture", 150, 5)
	seedPurchase(stores, "u1", bought)

	e := newTestEngine(stores)
	items, err := e.GetRecommendations(context.Background(), "u1", 0, &models.RecommendationContext{Category: "kitchen"})
	if err != nil {
		t.Fatal(err)
	}
	for _, item := range items {
		if item.Category != "kitchen" {
			t.Errorf("上下文品类过滤失效: %s", item.Category)
		}
	}
}

func TestRecommendationsCached(t *testing.T) {
	stores := testStores()
	bought := seedProduct(stores, "p1", "espresso coffee machine", "", "kitchen", 199, 10)
	seedProduct(stores, "p2", "coffee grinder", "", "kitchen", 59, 20)
	seedPurchase(stores, "u1", bought)

	e := newTestEngine(stores)
	ctx := context.Background()

	first, err := e.GetRecommendations(ctx, "u1", 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := stores.RecCache.Get("u1", 0); err != nil {
		t.Fatal("无上下文的推荐结果应进缓存")
	}

	// 上架新商品后缓存结果不变
	seedProduct(stores, "p3", "coffee mug", "", "kitchen", 9.9, 100)
	second, err := e.GetRecommendations(ctx, "u1", 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(second) != len(first) {
		t.Errorf("缓存命中时结果应不变: %d != %d", len(second), len(first))
	}

	// 强制刷新后新商品出现在结果中
	refreshed, err := e.RefreshUser(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(refreshed) != 2 {
		t.Errorf("刷新后结果数 = %d, want 2", len(refreshed))
	}
}

func TestUpdateUserProfileNoPurchases(t *testing.T) {
	stores := testStores()
	e := newTestEngine(stores)

	profile, err := e.UpdateUserProfile(context.Background(), "u-new")
	if err != nil {
		t.Fatal(err)
	}
	if len(profile.Embedding) != 64 {
		t.Fatalf("画像维度 = %d, want 64", len(profile.Embedding))
	}
	for _, v := range profile.Embedding {
		if v != 0 {
			t.Fatal("无购买记录的画像应为零向量")
		}
	}
	if profile.Purchases != 0 {
		t.Errorf("purchases = %d, want 0", profile.Purchases)
	}
}
