package services

import (
	"errors"
	"testing"

	"ai_ecommerce_assistant/models"
	"ai_ecommerce_assistant/repository"
)

func TestGetSuggestionsUnknownProduct(t *testing.T) {
	stores := testStores()
	d := NewDynamicPricing(testConfig(), stores.Products)

	_, err := d.GetSuggestions("missing", nil)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestGetSuggestionsNoSignals(t *testing.T) {
	stores := testStores()
	seedProduct(stores, "p1", "Coffee Maker", "", "kitchen", 100, 50)
	d := NewDynamicPricing(testConfig(), stores.Products)

	s, err := d.GetSuggestions("p1", nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.SuggestedPrice != 100 {
		t.Errorf("无市场信号时应维持当前价, got %.2f", s.SuggestedPrice)
	}
	if s.Confidence != 0.5 {
		t.Errorf("confidence = %.2f, want 0.5", s.Confidence)
	}
	if len(s.Rationale) == 0 {
		t.Error("rationale不应为空")
	}
}

func TestGetSuggestionsHighDemand(t *testing.T) {
	stores := testStores()
	seedProduct(stores, "p1", "Coffee Maker", "", "kitchen", 100, 50)
	d := NewDynamicPricing(testConfig(), stores.Products)

	s, err := d.GetSuggestions("p1", &models.MarketData{DemandLevel: "high"})
	if err != nil {
		t.Fatal(err)
	}
	if s.SuggestedPrice != 105 {
		t.Errorf("需求旺盛应上浮5%%, got %.2f", s.SuggestedPrice)
	}
}

func TestGetSuggestionsCompetitorPull(t *testing.T) {
	stores := testStores()
	seedProduct(stores, "p1", "Coffee Maker", "", "kitchen", 100, 50)
	d := NewDynamicPricing(testConfig(), stores.Products)

	// 竞品均价80：建议价向中点靠拢 100 + (80-100)*0.5 = 90
	s, err := d.GetSuggestions("p1", &models.MarketData{CompetitorPrices: []float64{70, 90}})
	if err != nil {
		t.Fatal(err)
	}
	if s.SuggestedPrice != 90 {
		t.Errorf("suggested = %.2f, want 90", s.SuggestedPrice)
	}
}

func TestGetSuggestionsClampedToCeiling(t *testing.T) {
	stores := testStores()
	seedProduct(stores, "p1", "Coffee Maker", "", "kitchen", 100, 50)
	d := NewDynamicPricing(testConfig(), stores.Products)

	// 竞品均价200会把建议价拉到150，但必须被限制在+20%以内
	s, err := d.GetSuggestions("p1", &models.MarketData{CompetitorPrices: []float64{200}})
	if err != nil {
		t.Fatal(err)
	}
	if s.SuggestedPrice != 120 {
		t.Errorf("suggested = %.2f, 应被限制在120", s.SuggestedPrice)
	}
	if s.MinPrice != 80 || s.MaxPrice != 120 {
		t.Errorf("边界 = [%.2f, %.2f], want [80, 120]", s.MinPrice, s.MaxPrice)
	}
}

func TestGetSuggestionsLowStockScarcity(t *testing.T) {
	stores := testStores()
	seedProduct(stores, "p1", "Coffee Maker", "", "kitchen", 100, 5)
	d := NewDynamicPricing(testConfig(), stores.Products)

	s, err := d.GetSuggestions("p1", nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.SuggestedPrice != 103 {
		t.Errorf("低库存应上浮3%%, got %.2f", s.SuggestedPrice)
	}
}
