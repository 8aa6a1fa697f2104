package repository

import (
	"sync"
	"time"

	"ai_ecommerce_assistant/models"
)

type cachedRecommendations struct {
	items       []models.RecommendationItem
	generatedAt time.Time
}

// RecommendationCache 用户推荐结果缓存（内存实现）
type RecommendationCache struct {
	mu    sync.RWMutex
	cache map[string]cachedRecommendations
}

func NewRecommendationCache() *RecommendationCache {
	return &RecommendationCache{cache: make(map[string]cachedRecommendations)}
}

// Save 保存用户的推荐结果
func (c *RecommendationCache) Save(userID string, items []models.RecommendationItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[userID] = cachedRecommendations{items: items, generatedAt: time.Now()}
}

// Get 获取用户的推荐结果，maxAge为0表示不检查过期
func (c *RecommendationCache) Get(userID string, maxAge time.Duration) ([]models.RecommendationItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.cache[userID]
	if !ok {
		return nil, ErrNotFound
	}
	if maxAge > 0 && time.Since(entry.generatedAt) > maxAge {
		return nil, ErrNotFound
	}
	return entry.items, nil
}

// Invalidate 清除用户的推荐缓存
func (c *RecommendationCache) Invalidate(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.cache, userID)
}

// ListUsers 返回有缓存推荐的用户列表
func (c *RecommendationCache) ListUsers() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.cache))
	for uid := range c.cache {
		out = append(out, uid)
	}
	return out
}
