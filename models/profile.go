package models

import "time"

// UserProfile 用户画像，核心是基于购买历史计算出的兴趣向量
type UserProfile struct {
	UserID    string    `json:"user_id"`
	Embedding []float64 `json:"embedding"` // 兴趣向量，维度等于配置的embedding_size
	Purchases int       `json:"purchases"` // 参与计算的购买记录数
	UpdatedAt time.Time `json:"updated_at"`
}
