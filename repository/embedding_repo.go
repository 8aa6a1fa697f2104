package repository

import (
	"sync"
	"time"

	"ai_ecommerce_assistant/models"
)

// EmbeddingRepo 商品/用户/FAQ向量存储（内存实现）
type EmbeddingRepo struct {
	mu       sync.RWMutex
	products map[string][]float64
	users    map[string]models.UserProfile
	faqs     map[string][]float64
}

func NewEmbeddingRepo() *EmbeddingRepo {
	return &EmbeddingRepo{
		products: make(map[string][]float64),
		users:    make(map[string]models.UserProfile),
		faqs:     make(map[string][]float64),
	}
}

// SaveProductEmbedding 保存商品向量
func (r *EmbeddingRepo) SaveProductEmbedding(productID string, vec []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[productID] = vec
}

// GetProductEmbedding 获取商品向量
func (r *EmbeddingRepo) GetProductEmbedding(productID string) ([]float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	vec, ok := r.products[productID]
	if !ok {
		return nil, ErrNotFound
	}
	return vec, nil
}

// ProductEmbeddings 返回全部商品向量的快照
func (r *EmbeddingRepo) ProductEmbeddings() map[string][]float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string][]float64, len(r.products))
	for id, vec := range r.products {
		out[id] = vec
	}
	return out
}

// SaveFAQEmbedding 保存FAQ条目向量
func (r *EmbeddingRepo) SaveFAQEmbedding(faqID string, vec []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.faqs[faqID] = vec
}

// GetFAQEmbedding 获取FAQ条目向量
func (r *EmbeddingRepo) GetFAQEmbedding(faqID string) ([]float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	vec, ok := r.faqs[faqID]
	if !ok {
		return nil, ErrNotFound
	}
	return vec, nil
}

// DeleteFAQEmbedding 删除FAQ条目向量，条目内容更新后调用
func (r *EmbeddingRepo) DeleteFAQEmbedding(faqID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.faqs, faqID)
}

// SaveUserProfile 保存用户画像
func (r *EmbeddingRepo) SaveUserProfile(userID string, vec []float64, purchases int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[userID] = models.UserProfile{
		UserID:    userID,
		Embedding: vec,
		Purchases: purchases,
		UpdatedAt: time.Now(),
	}
}

// GetUserProfile 获取用户画像
func (r *EmbeddingRepo) GetUserProfile(userID string) (models.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.users[userID]
	if !ok {
		return models.UserProfile{}, ErrNotFound
	}
	return p, nil
}
