package models

import "time"

// CartItem 购物车中的单个商品
type CartItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Cart 用户购物车
type Cart struct {
	UserID    string     `json:"user_id"`
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	UpdatedAt time.Time  `json:"updated_at"`
	Recovered bool       `json:"recovered"` // 是否已生成过挽回方案
}

// RecoveryPlan 放弃购物车的挽回方案
type RecoveryPlan struct {
	PlanID          string               `json:"plan_id"`
	UserID          string               `json:"user_id"`
	CartTotal       float64              `json:"cart_total"`
	DiscountPercent float64              `json:"discount_percent"` // 建议的折扣力度，0表示不打折
	Message         string               `json:"message"`          // 挽回文案
	Suggestions     []RecommendationItem `json:"suggestions"`      // 搭配推荐的商品
	CreatedAt       time.Time            `json:"created_at"`
}
