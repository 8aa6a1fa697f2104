package models

import "time"

// Product 商品信息
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Stock       int      `json:"stock"`
}

// PurchaseRecord 用户购买记录
type PurchaseRecord struct {
	ProductID   string    `json:"product_id"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	PurchasedAt time.Time `json:"purchased_at"`
}

// SalesRecord 商品销售记录，用于库存预测
type SalesRecord struct {
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Date      time.Time `json:"date"`
}
