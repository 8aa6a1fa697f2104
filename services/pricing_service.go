package services

import (
	"fmt"
	"math"

	"ai_ecommerce_assistant/config"
	"ai_ecommerce_assistant/logger"
	"ai_ecommerce_assistant/models"
	"ai_ecommerce_assistant/repository"
)

// 调价边界：建议价被限制在当前价的±20%以内
const (
	priceFloorRatio   = 0.80
	priceCeilingRatio = 1.20
)

// DynamicPricing 动态定价引擎
// 基于竞品价格、需求水平、库存水位和季节因子对当前价做加权调整
type DynamicPricing struct {
	cfg      *config.Config
	products *repository.ProductRepo
}

func NewDynamicPricing(cfg *config.Config, products *repository.ProductRepo) *DynamicPricing {
	return &DynamicPricing{cfg: cfg, products: products}
}

// GetSuggestions 生成定价建议，market可以为nil，此时只考虑库存信号
func (d *DynamicPricing) GetSuggestions(productID string, market *models.MarketData) (models.PriceSuggestion, error) {
	p, err := d.products.Get(productID)
	if err != nil {
		return models.PriceSuggestion{}, err
	}

	base := p.Price
	suggested := base
	var rationale []string
	signals := 0

	// 竞品价格：建议价向竞品均价的中点靠拢
	if market != nil && len(market.CompetitorPrices) > 0 {
		var sum float64
		for _, cp := range market.CompetitorPrices {
			sum += cp
		}
		avg := sum / float64(len(market.CompetitorPrices))
		suggested += (avg - base) * 0.5
		signals++
		if avg < base {
			rationale = append(rationale, fmt.Sprintf("竞品均价%.2f低于当前价，建议下调靠拢", avg))
		} else if avg > base {
			rationale = append(rationale, fmt.Sprintf("竞品均价%.2f高于当前价，存在提价空间", avg))
		}
	}

	// 需求水平
	if market != nil && market.DemandLevel != "" {
		signals++
		switch market.DemandLevel {
		case "high":
			suggested *= 1.05
			rationale = append(rationale, "需求旺盛，上浮5%")
		case "low":
			suggested *= 0.95
			rationale = append(rationale, "需求疲软，下调5%促销")
		}
	}

	// 库存水位
	switch {
	case p.Stock > 0 && p.Stock < 10:
		suggested *= 1.03
		signals++
		rationale = append(rationale, fmt.Sprintf("库存仅剩%d件，稀缺性上浮3%%", p.Stock))
	case p.Stock > 100:
		suggested *= 0.97
		signals++
		rationale = append(rationale, fmt.Sprintf("库存积压%d件，下调3%%加速周转", p.Stock))
	}

	// 季节因子直接按倍数生效
	if market != nil && market.SeasonFactor > 0 && market.SeasonFactor != 1 {
		suggested *= market.SeasonFactor
		signals++
		rationale = append(rationale, fmt.Sprintf("季节因子%.2f", market.SeasonFactor))
	}

	// 限制在边界内
	minPrice := round2(base * priceFloorRatio)
	maxPrice := round2(base * priceCeilingRatio)
	if suggested < minPrice {
		suggested = minPrice
		rationale = append(rationale, "已触及调价下限（当前价-20%）")
	}
	if suggested > maxPrice {
		suggested = maxPrice
		rationale = append(rationale, "已触及调价上限（当前价+20%）")
	}

	if len(rationale) == 0 {
		rationale = append(rationale, "无明显市场信号，维持当前价")
	}

	// 信号越多置信度越高
	confidence := 0.5 + 0.1*float64(signals)
	if confidence > 0.9 {
		confidence = 0.9
	}

	suggestion := models.PriceSuggestion{
		ProductID:      productID,
		CurrentPrice:   base,
		SuggestedPrice: round2(suggested),
		MinPrice:       minPrice,
		MaxPrice:       maxPrice,
		Confidence:     confidence,
		Rationale:      rationale,
	}

	logger.Info("定价建议生成完成",
		"product_id", productID,
		"current", suggestion.CurrentPrice,
		"suggested", suggestion.SuggestedPrice,
		"signals", signals)
	return suggestion, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
